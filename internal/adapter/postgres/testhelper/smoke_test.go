package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	profile := SeedWordProfile(t, pool)

	// Verify the profile exists in DB via SELECT.
	var word string
	err := pool.QueryRow(
		context.Background(),
		`SELECT word FROM word_profiles WHERE id = $1`,
		profile.ID,
	).Scan(&word)
	if err != nil {
		t.Fatalf("expected profile in DB, got error: %v", err)
	}

	if word != profile.Word {
		t.Fatalf("expected word %q, got %q", profile.Word, word)
	}
}

package domain

import "strings"

// MergeStrings merges incoming values into an existing list with the
// dedup rules used by every array merge in an enrichment pass:
//
//   - entries equal after NormalizeText are collapsed to the first occurrence
//   - entries whose normalized text is a strict substring of another retained
//     entry are dropped (prevents near-duplicate noise like "comprehensive"
//     next to "very comprehensive" accumulating across passes)
//
// Order of first occurrence is preserved. Merging already-merged data is
// a no-op, which keeps repeated enrichment passes idempotent.
func MergeStrings(existing, incoming []string) []string {
	combined := make([]string, 0, len(existing)+len(incoming))
	combined = append(combined, existing...)
	combined = append(combined, incoming...)

	seen := make(map[string]struct{}, len(combined))
	var kept []string
	var keys []string
	for _, s := range combined {
		key := NormalizeText(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, s)
		keys = append(keys, key)
	}

	// Substring pass over the deduplicated list.
	result := kept[:0:0]
	for i, key := range keys {
		substr := false
		for j, other := range keys {
			if i == j || len(key) >= len(other) {
				continue
			}
			if strings.Contains(other, key) {
				substr = true
				break
			}
		}
		if !substr {
			result = append(result, kept[i])
		}
	}
	return result
}

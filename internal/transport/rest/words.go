package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vocabguru/vocabguru-backend/internal/domain"
	"github.com/vocabguru/vocabguru-backend/internal/service/enrichment"
)

// enrichmentService defines the minimal interface needed by WordsHandler.
type enrichmentService interface {
	GetProfile(ctx context.Context, word string) (*domain.WordProfile, []domain.WordRelationship, []domain.UsageContext, error)
	EnrichWord(ctx context.Context, word string, opts enrichment.Options) (enrichment.WordOutcome, error)
	EnrichBatch(ctx context.Context, words []string, opts enrichment.Options, onProgress enrichment.ProgressFunc) ([]enrichment.WordOutcome, error)
}

// WordsHandler serves word profile and enrichment REST endpoints.
type WordsHandler struct {
	svc           enrichmentService
	maxBatchWords int
	log           *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc enrichmentService, maxBatchWords int, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{
		svc:           svc,
		maxBatchWords: maxBatchWords,
		log:           logger.With("handler", "words"),
	}
}

type enrichRequest struct {
	Options *enrichment.Options `json:"options,omitempty"`
}

type batchEnrichRequest struct {
	Words   []string            `json:"words"`
	Options *enrichment.Options `json:"options,omitempty"`
}

type batchEnrichResponse struct {
	Total      int                      `json:"total"`
	Successful int                      `json:"successful"`
	Failed     int                      `json:"failed"`
	Outcomes   []enrichment.WordOutcome `json:"outcomes"`
}

type wordProfileResponse struct {
	ID                string                    `json:"id"`
	Word              string                    `json:"word"`
	MorphemeBreakdown *domain.MorphemeBreakdown `json:"morpheme_breakdown,omitempty"`
	Etymology         domain.Etymology          `json:"etymology"`
	Phonetics         *domain.PhoneticData      `json:"phonetics,omitempty"`
	Definitions       domain.Definitions        `json:"definitions"`
	WordForms         map[string]string         `json:"word_forms,omitempty"`
	Analysis          domain.WordAnalysis       `json:"analysis"`
	QualityScore      int                       `json:"quality_score"`
	CompletenessScore int                       `json:"completeness_score"`
	EnrichmentStatus  string                    `json:"enrichment_status"`
	LastEnrichmentAt  *time.Time                `json:"last_enrichment_at,omitempty"`
	Relationships     []relationshipResponse    `json:"relationships"`
	UsageContexts     []usageContextResponse    `json:"usage_contexts"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

type relationshipResponse struct {
	TargetWord string  `json:"target_word"`
	Type       string  `json:"type"`
	Strength   float64 `json:"strength"`
	Confidence float64 `json:"confidence"`
}

type usageContextResponse struct {
	Sentence string `json:"sentence"`
	Context  string `json:"context,omitempty"`
	Source   string `json:"source"`
}

// Get handles GET /v1/words/{word}.
func (h *WordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	profile, rels, usages, err := h.svc.GetProfile(r.Context(), word)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(profile, rels, usages))
}

// Enrich handles POST /v1/words/{word}/enrich. The body is optional;
// an empty or absent options object requests a full pass.
func (h *WordsHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	var req enrichRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	outcome, err := h.svc.EnrichWord(r.Context(), word, optionsOrDefault(req.Options))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

// EnrichBatch handles POST /v1/enrich/batch.
func (h *WordsHandler) EnrichBatch(w http.ResponseWriter, r *http.Request) {
	var req batchEnrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Words) > h.maxBatchWords {
		writeError(w, http.StatusBadRequest, "too many words in batch")
		return
	}

	outcomes, err := h.svc.EnrichBatch(r.Context(), req.Words, optionsOrDefault(req.Options), nil)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := batchEnrichResponse{Total: len(outcomes), Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Success {
			resp.Successful++
		} else {
			resp.Failed++
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *WordsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "word not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func optionsOrDefault(opts *enrichment.Options) enrichment.Options {
	if opts == nil {
		return enrichment.DefaultOptions()
	}
	return *opts
}

func toProfileResponse(p *domain.WordProfile, rels []domain.WordRelationship, usages []domain.UsageContext) wordProfileResponse {
	resp := wordProfileResponse{
		ID:                p.ID.String(),
		Word:              p.Word,
		MorphemeBreakdown: p.MorphemeBreakdown,
		Etymology:         p.Etymology,
		Phonetics:         p.Phonetics,
		Definitions:       p.Definitions,
		WordForms:         p.WordForms,
		Analysis:          p.Analysis,
		QualityScore:      p.QualityScore,
		CompletenessScore: p.CompletenessScore,
		EnrichmentStatus:  p.EnrichmentStatus.String(),
		LastEnrichmentAt:  p.LastEnrichmentAt,
		Relationships:     make([]relationshipResponse, 0, len(rels)),
		UsageContexts:     make([]usageContextResponse, 0, len(usages)),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	for _, rel := range rels {
		resp.Relationships = append(resp.Relationships, relationshipResponse{
			TargetWord: rel.TargetWord,
			Type:       rel.Type.String(),
			Strength:   rel.Strength,
			Confidence: rel.Confidence,
		})
	}
	for _, u := range usages {
		resp.UsageContexts = append(resp.UsageContexts, usageContextResponse{
			Sentence: u.Sentence,
			Context:  u.Context,
			Source:   u.Source.String(),
		})
	}
	return resp
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package classifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/tasnif/pkg/handlers"
	"github.com/JaimeStill/tasnif/pkg/routes"
)

// Handler provides HTTP endpoints for sentence classification.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// Request is the JSON body accepted by the classify endpoint.
type Request struct {
	Sentence string `json:"sentence"`
}

// NewHandler creates a Handler with the given system, logger, and request body limit.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "classifier"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/categories", Handler: h.Categories},
			{Method: "POST", Pattern: "/classify", Handler: h.Classify},
		},
	}
}

// Categories returns the fixed category list the model is asked to score.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string][]string{"categories": Categories})
}

// Classify decodes a Request body and responds with the resolved Outcome.
// Marker-missing output is returned as a 200 warning carrying the raw text.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	c, err := h.sys.Classify(r.Context(), req.Sentence)
	outcome := NewOutcome(req.Sentence, c, err)

	if err != nil {
		h.logger.WarnContext(
			r.Context(), "classification not completed",
			"outcome_id", outcome.ID,
			"status", outcome.Status,
			"error", err,
		)
	}

	handlers.RespondJSON(w, MapHTTPStatus(err), outcome)
}

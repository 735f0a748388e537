package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/tasnif/internal/classifier"
	"github.com/JaimeStill/tasnif/pkg/web"
)

// DefaultSentence pre-fills the textarea on first load.
const DefaultSentence = "Enter a sentence..."

const description = "Enter a sentence in Arabic, and the Llama 3 model will classify it into one or more " +
	"of the following categories and provide confidence scores for each:"

type score struct {
	Category string
	Value    string
}

type pageData struct {
	Description string
	Categories  []string
	Sentence    string
	Outcome     *classifier.Outcome
	Scores      []score
	ResultJSON  string
}

type handler struct {
	sys         classifier.System
	templates   *web.TemplateSet
	maxBodySize int64
	logger      *slog.Logger
}

func newHandler(
	sys classifier.System,
	ts *web.TemplateSet,
	maxBodySize int64,
	logger *slog.Logger,
) *handler {
	return &handler{
		sys:         sys,
		templates:   ts,
		maxBodySize: maxBodySize,
		logger:      logger.With("handler", "app"),
	}
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, newPageData(DefaultSentence))
}

func (h *handler) classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "form parse failed", "error", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sentence := r.PostFormValue("sentence")
	data := newPageData(sentence)

	var (
		c   *classifier.Classification
		err error
	)
	if strings.TrimSpace(sentence) == "" {
		err = classifier.ErrValidation
	} else {
		c, err = h.sys.Classify(r.Context(), sentence)
	}

	outcome := classifier.NewOutcome(sentence, c, err)
	data.Outcome = &outcome

	if outcome.Status == classifier.StatusResult {
		data.Scores = scores(outcome.Result)
		data.ResultJSON = prettyJSON(outcome.Result)
	}

	h.logger.InfoContext(
		r.Context(), "submission handled",
		"outcome_id", outcome.ID,
		"status", outcome.Status,
	)

	h.render(w, r, classifier.MapHTTPStatus(err), data)
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	if err := h.templates.RenderView(w, status, layout, classifyView, data); err != nil {
		h.logger.ErrorContext(r.Context(), "render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func newPageData(sentence string) pageData {
	return pageData{
		Description: description,
		Categories:  classifier.Categories,
		Sentence:    sentence,
	}
}

func scores(result classifier.Result) []score {
	keys := result.Keys()
	out := make([]score, 0, len(keys))
	for _, k := range keys {
		out = append(out, score{Category: k, Value: result.Value(k)})
	}
	return out
}

func prettyJSON(result classifier.Result) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprint(result)
	}
	return string(data)
}

package classifier_test

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/tasnif/internal/classifier"
)

func TestNewOutcome(t *testing.T) {
	result := classifier.Result{"hate": 0.9}

	tests := []struct {
		name       string
		c          *classifier.Classification
		err        error
		wantStatus classifier.Status
		wantRaw    string
	}{
		{"success", &classifier.Classification{Result: result}, nil, classifier.StatusResult, ""},
		{"validation", nil, classifier.ErrValidation, classifier.StatusInvalid, ""},
		{
			"marker missing",
			nil,
			&classifier.OutputError{Raw: "I cannot help", Err: classifier.ErrMarkerNotFound},
			classifier.StatusWarning,
			"I cannot help",
		},
		{
			"invalid json",
			nil,
			&classifier.OutputError{Raw: "###RESULT nope", Err: classifier.ErrInvalidJSON},
			classifier.StatusError,
			"",
		},
		{"auth", nil, fmt.Errorf("%w: status 401", classifier.ErrAuth), classifier.StatusError, ""},
		{"transport", nil, classifier.ErrTransport, classifier.StatusError, ""},
		{"nil without error", nil, nil, classifier.StatusError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := classifier.NewOutcome("sentence", tt.c, tt.err)

			if o.Status != tt.wantStatus {
				t.Errorf("status: got %s, want %s", o.Status, tt.wantStatus)
			}
			if o.Raw != tt.wantRaw {
				t.Errorf("raw: got %q, want %q", o.Raw, tt.wantRaw)
			}
			if o.ID == uuid.Nil {
				t.Error("outcome id should be set")
			}
			if o.Status == classifier.StatusResult && o.Result == nil {
				t.Error("result outcome should carry result")
			}
			if o.Status != classifier.StatusResult && o.Error == "" {
				t.Error("non-result outcome should carry an error message")
			}
		})
	}
}

func TestResultKeys(t *testing.T) {
	r := classifier.Result{"vulgar": 0.0, "hate": 0.9, "violent": 0.1, "offensive": 0.2}
	got := r.Keys()
	want := []string{"hate", "offensive", "violent", "vulgar"}
	if !slices.Equal(got, want) {
		t.Errorf("keys: got %v, want %v", got, want)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", classifier.ErrValidation, http.StatusUnprocessableEntity},
		{"marker missing", &classifier.OutputError{Err: classifier.ErrMarkerNotFound}, http.StatusOK},
		{"invalid json", &classifier.OutputError{Err: classifier.ErrInvalidJSON}, http.StatusBadGateway},
		{"auth", classifier.ErrAuth, http.StatusBadGateway},
		{"transport", classifier.ErrTransport, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResultValue(t *testing.T) {
	result := classifier.Result{
		"hate":      0.9,
		"offensive": "high",
		"violent":   nil,
		"vulgar":    []any{1.0, 2.0},
	}

	tests := map[string]string{
		"hate":      "0.9",
		"offensive": "high",
		"violent":   "null",
		"vulgar":    "[1,2]",
		"missing":   "null",
	}

	for key, want := range tests {
		if got := result.Value(key); got != want {
			t.Errorf("Value(%q): got %q, want %q", key, got, want)
		}
	}
}

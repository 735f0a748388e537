package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Result maps category names to the scores returned by the model.
// Values are kept exactly as decoded; neither keys nor ranges are checked.
type Result map[string]any

// Keys returns the result's category names in sorted order.
func (r Result) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Value renders the score stored under key for display.
// Numbers print in their shortest exact form and strings print verbatim.
func (r Result) Value(key string) string {
	switch v := r[key].(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

// Classification is the successful output of a single Classify call.
type Classification struct {
	Result   Result        `json:"result"`
	Raw      string        `json:"raw"`
	Model    string        `json:"model"`
	Duration time.Duration `json:"duration"`
}

// Status identifies which of the render modes an Outcome resolves to.
type Status string

// Outcome statuses.
const (
	StatusResult  Status = "result"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	StatusInvalid Status = "invalid"
)

// Outcome is the render-ready resolution of one submission.
type Outcome struct {
	ID       uuid.UUID `json:"id"`
	Status   Status    `json:"status"`
	Sentence string    `json:"sentence"`
	Result   Result    `json:"result,omitempty"`
	Raw      string    `json:"raw,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// NewOutcome resolves a Classify return pair into exactly one render mode:
// result on success, warning with raw text when the marker is missing,
// invalid for empty input, and error for everything else.
func NewOutcome(sentence string, c *Classification, err error) Outcome {
	o := Outcome{
		ID:       uuid.New(),
		Sentence: sentence,
	}

	switch {
	case err == nil && c != nil:
		o.Status = StatusResult
		o.Result = c.Result
	case err == nil:
		o.Status = StatusError
		o.Error = "no classification returned"
	case errors.Is(err, ErrValidation):
		o.Status = StatusInvalid
		o.Error = err.Error()
	case errors.Is(err, ErrMarkerNotFound):
		o.Status = StatusWarning
		o.Error = err.Error()
		o.Raw, _ = RawOutput(err)
	default:
		o.Status = StatusError
		o.Error = err.Error()
	}

	return o
}

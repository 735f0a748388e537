package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Errors returned by ParseMarked.
var (
	ErrMarkerNotFound = errors.New("marker not found")
	ErrParseFailed    = errors.New("failed to parse response")
)

// ParseMarked locates the first occurrence of marker in content and
// unmarshals the trimmed remainder as JSON into T. Any text before the
// marker is discarded. Returns ErrMarkerNotFound when the marker is absent
// and ErrParseFailed when the remainder is not a single JSON value of T.
func ParseMarked[T any](content, marker string) (T, error) {
	var result T

	_, after, found := strings.Cut(content, marker)
	if !found {
		return result, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}

	payload := strings.TrimSpace(after)
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	return result, nil
}

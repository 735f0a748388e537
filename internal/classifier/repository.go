package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/JaimeStill/tasnif/pkg/formatting"
	"github.com/JaimeStill/tasnif/pkg/inference"
)

type repo struct {
	chatter func() (Chatter, error)
	sem     *semaphore.Weighted
	logger  *slog.Logger
}

// New creates a classifier implementing the System interface. The Chatter is
// built lazily on the first Classify call and reused afterwards; calls are
// serialized so at most one request is in flight.
func New(factory ChatterFactory, logger *slog.Logger) System {
	return &repo{
		chatter: sync.OnceValues(func() (Chatter, error) {
			return factory()
		}),
		sem:    semaphore.NewWeighted(1),
		logger: logger.With("system", "classifier"),
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, maxBodySize)
}

func (r *repo) Classify(ctx context.Context, sentence string) (*Classification, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, ErrValidation
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer r.sem.Release(1)

	chatter, err := r.chatter()
	if err != nil {
		return nil, mapInferenceError(err)
	}

	start := time.Now()
	text, err := chatter.Chat(ctx, Messages(sentence), GenerationOptions())
	if err != nil {
		r.logger.ErrorContext(ctx, "chat completion failed", "error", err)
		return nil, mapInferenceError(err)
	}
	duration := time.Since(start)

	result, err := parseResult(text)
	if err != nil {
		r.logger.WarnContext(
			ctx, "unparseable model output",
			"error", err,
			"raw_length", len(text),
		)
		return nil, err
	}

	r.logger.InfoContext(
		ctx, "sentence classified",
		"model", chatter.Model(),
		"categories", len(result),
		"duration", duration,
	)

	return &Classification{
		Result:   result,
		Raw:      text,
		Model:    chatter.Model(),
		Duration: duration,
	}, nil
}

func parseResult(text string) (Result, error) {
	result, err := formatting.ParseMarked[Result](text, Marker)
	switch {
	case errors.Is(err, formatting.ErrMarkerNotFound):
		return nil, &OutputError{Raw: text, Err: ErrMarkerNotFound}
	case err != nil:
		return nil, &OutputError{Raw: text, Err: fmt.Errorf("%w: %w", ErrInvalidJSON, err)}
	case result == nil:
		return nil, &OutputError{Raw: text, Err: fmt.Errorf("%w: null is not an object", ErrInvalidJSON)}
	}
	return result, nil
}

func mapInferenceError(err error) error {
	if errors.Is(err, inference.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

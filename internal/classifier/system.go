// Package classifier scores a single sentence against the hate, offensive,
// violent, and vulgar categories by prompting a hosted chat model and
// parsing the JSON it emits after a fixed marker.
package classifier

import (
	"context"

	"github.com/JaimeStill/tasnif/pkg/inference"
)

// System defines the public contract for classification operations.
type System interface {
	Handler(maxBodySize int64) *Handler

	// Classify trims sentence, rejects it with ErrValidation when empty, and
	// otherwise issues exactly one chat-completion call.
	Classify(ctx context.Context, sentence string) (*Classification, error)
}

// Chatter is the chat-completion capability the classifier depends on.
type Chatter interface {
	Model() string
	Chat(ctx context.Context, messages []inference.Message, opts inference.Options) (string, error)
}

// ChatterFactory constructs the Chatter used for every classification.
// It is invoked at most once per System.
type ChatterFactory func() (Chatter, error)

// InferenceFactory returns a ChatterFactory backed by an inference.Client built from cfg.
func InferenceFactory(cfg *inference.Config) ChatterFactory {
	return func() (Chatter, error) {
		return inference.New(cfg)
	}
}

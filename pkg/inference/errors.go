package inference

import "errors"

// Sentinel errors for chat-completion calls.
var (
	ErrUnauthorized  = errors.New("inference credential rejected")
	ErrRequestFailed = errors.New("inference request failed")
	ErrEmptyResponse = errors.New("inference response contained no message content")
)

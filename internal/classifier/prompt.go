package classifier

import (
	"fmt"

	"github.com/JaimeStill/tasnif/pkg/inference"
)

// Marker precedes the JSON object in the model's answer.
const Marker = "###RESULT"

// Categories lists the labels the model is asked to score.
var Categories = []string{"hate", "offensive", "violent", "vulgar"}

// SystemPrompt instructs the model to score each category and emit the
// marker immediately followed by a single JSON object.
const SystemPrompt = "You are a classifier. Given the following Arabic sentence, classify it into the categories: hate, offensive, violent, vulgar. " +
	"For each category, provide a confidence score between 0 and 1. " +
	"Respond with EXACTLY the JSON object and nothing else, prefixed by the token " + Marker + "."

// GenerationOptions returns the sampling parameters sent with every
// classification: greedy decoding capped at 128 output tokens.
func GenerationOptions() inference.Options {
	return inference.Options{Temperature: 0, TopP: 1, MaxTokens: 128}
}

// Messages builds the two-message conversation for sentence.
func Messages(sentence string) []inference.Message {
	return []inference.Message{
		{Role: inference.RoleSystem, Content: SystemPrompt},
		{Role: inference.RoleUser, Content: fmt.Sprintf("Sentence: \"%s\"", sentence)},
	}
}

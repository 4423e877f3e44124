package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// ParseTravelIntent analyzes the user's natural language input and extracts
	// which travel vertical they are after plus a conversational reply.
	ParseTravelIntent(ctx context.Context, userMessage string) (*IntentResult, error)
}

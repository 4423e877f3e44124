package ai

// IntentResult captures the structured output from the AI model.
type IntentResult struct {
	// Intent is the travel vertical the user is after:
	// "flight", "hotel", "car", or "chat" for anything else.
	Intent string `json:"intent"`

	// Slots holds whatever trip details the model could extract from the
	// message (cities, dates, budget). Keys mirror the dialogue manager's
	// slot names; missing slots are simply absent.
	Slots map[string]string `json:"slots,omitempty"`

	// Reply is a short conversational response that tells the user which
	// details are still needed to run a search.
	Reply string `json:"reply"`
}

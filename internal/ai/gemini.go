package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ParseTravelIntent analyzes user input to extract the travel vertical and
// any trip slots the message already carries.
func (p *GeminiProvider) ParseTravelIntent(ctx context.Context, userMessage string) (*IntentResult, error) {
	fullPrompt := fmt.Sprintf("%s\n\nUser Message: %s", systemPrompt, userMessage)

	resp, err := p.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var result IntentResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

const systemPrompt = `Role: You are the travel concierge for "Voyago", a trip booking assistant.
The backend can search flights, hotels, and rental cars; each search needs a
fixed set of details before it can run.

RULES:

1. VERTICAL DETECTION:
   - Flight requests (fly, flight, airline, ticket) -> "intent": "flight".
   - Hotel requests (hotel, stay, room, night) -> "intent": "hotel".
   - Car requests (car, rental, drive, pick up a car) -> "intent": "car".
   - Anything else -> "intent": "chat".

2. SLOT EXTRACTION (populate "slots" with whatever the message states):
   - flight: departure_city, destination_city, departure_date, flight_class, layover_city.
   - hotel: hotel_city, check_in, check_out, budget.
   - car: pick_up_city, drop_off_city, pick_up, drop_off_date.
   - Dates as YYYY-MM-DD. Never invent a value the user did not state.

3. REPLY:
   - Name the details still missing for the detected vertical, conversationally.
   - For "chat", briefly say you can help with flights, hotels, and car rentals.
   - Plain text only, no markdown.

4. Output JSON Schema:
{
  "intent": "flight" | "hotel" | "car" | "chat",
  "slots": { "slot_name": "value" },
  "reply": "string (user facing response)"
}
`

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// README: Dialogflow CX webhook wire shapes and response builders.
package dialog

// WebhookRequest is the fulfillment call the dialogue manager sends once
// per turn. Only the tag and the session parameter bag matter here.
type WebhookRequest struct {
	FulfillmentInfo FulfillmentInfo `json:"fulfillmentInfo"`
	SessionInfo     SessionInfo     `json:"sessionInfo"`
}

type FulfillmentInfo struct {
	Tag string `json:"tag"`
}

type SessionInfo struct {
	Parameters map[string]any `json:"parameters,omitempty"`
}

// WebhookResponse carries the reply text, the updated parameter bag, and
// optional rich-content payloads back to the dialogue manager.
type WebhookResponse struct {
	FulfillmentResponse FulfillmentResponse `json:"fulfillment_response"`
	SessionInfo         *SessionInfo        `json:"sessionInfo,omitempty"`
}

type FulfillmentResponse struct {
	Messages []Message `json:"messages"`
}

// Message is either a plain text message or a custom payload (rich cards).
type Message struct {
	Text    *Text          `json:"text,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Text struct {
	Text []string `json:"text"`
}

// NewResponse builds a text-only response. parameters may be nil, in which
// case the session bag is left untouched.
func NewResponse(reply string, parameters map[string]any) *WebhookResponse {
	resp := &WebhookResponse{
		FulfillmentResponse: FulfillmentResponse{
			Messages: []Message{{Text: &Text{Text: []string{reply}}}},
		},
	}
	if parameters != nil {
		resp.SessionInfo = &SessionInfo{Parameters: parameters}
	}
	return resp
}

// AddRichContent appends one rich-content row holding the given cards.
// No-op when cards is empty, so callers can pass whatever they collected.
func (r *WebhookResponse) AddRichContent(cards []map[string]any) {
	if len(cards) == 0 {
		return
	}
	r.FulfillmentResponse.Messages = append(r.FulfillmentResponse.Messages, Message{
		Payload: map[string]any{
			"richContent": []any{cards},
		},
	})
}

// InfoCard renders a titled card with an image, used for hotel options.
func InfoCard(title, subtitle, imageURL, alt string) map[string]any {
	return map[string]any{
		"type":     "info",
		"title":    title,
		"subtitle": subtitle,
		"image": map[string]any{
			"imageUri":          imageURL,
			"accessibilityText": alt,
		},
	}
}

// ImageCard renders a bare image card, used for car options and selected
// option previews.
func ImageCard(rawURL, alt string) map[string]any {
	return map[string]any{
		"type":              "image",
		"rawUrl":            rawURL,
		"accessibilityText": alt,
	}
}

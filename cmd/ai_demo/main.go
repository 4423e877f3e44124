package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"voyago/internal/ai"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	userMessage := "I need a flight from New York to Paris on March 9th"
	fmt.Printf("User: %s\n", userMessage)

	result, err := provider.ParseTravelIntent(ctx, userMessage)
	if err != nil {
		log.Fatalf("Error parsing intent: %v", err)
	}

	fmt.Printf("AI Reply: %s\n", result.Reply)
	fmt.Printf("Intent: %s\n", result.Intent)
	for slot, value := range result.Slots {
		fmt.Printf("Slot %s: %s\n", slot, value)
	}
}

// Package extract turns free-text event announcements into structured fields
// using a hosted LLM.
package extract

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/wb-go/wbf/logger"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

const extractionPrompt = `Extract event information from the following text or URL content. If this is a URL, imagine what a typical event page might contain. Focus on extracting:
- Event title
- Start date (start_date, YYYY-MM-DD) and start time (start_time, HH:MM, 24-hour)
- End date and time (end_date, end_time, if available)
- Location
- Description
- Relevant categories (choose from: Academic, Career, Sports, Social, Free Food, Greek Life, Arts, Music, Technology, Wellness, Workshop, Networking, Information, etc.)
- Image URL (image_url, if present)

Respond with a single JSON object using exactly these keys: title, description, start_date, start_time, end_date, end_time, location, categories, image_url.

Text/URL: %s

If you cannot extract clear information, make reasonable assumptions for a typical campus event.`

type OpenAIExtractor struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAIExtractor builds the extractor. With an empty API key it stays up
// and fails every extraction, so the organizer form degrades to manual entry.
func NewOpenAIExtractor(apiKey, model string, logger logger.Logger) *OpenAIExtractor {
	if apiKey == "" {
		logger.Warn("openai api key is empty, event extraction disabled")
		return &OpenAIExtractor{client: nil, model: model, logger: logger}
	}

	return &OpenAIExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

func (e *OpenAIExtractor) Extract(ctx context.Context, text string) (*domain.ExtractedEvent, error) {
	if e.client == nil {
		return nil, fmt.Errorf("extractor is disabled")
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(extractionPrompt, text),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	var extracted domain.ExtractedEvent
	if err = json.Unmarshal([]byte(resp.Choices[0].Message.Content), &extracted); err != nil {
		return nil, fmt.Errorf("decode extraction: %w", err)
	}
	if extracted.Title == "" {
		return nil, fmt.Errorf("extraction missing title")
	}

	return &extracted, nil
}

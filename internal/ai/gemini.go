package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/reventhtv/careerscope-AI/internal/shared/telemetry"
)

const defaultModel = "gemini-1.5-flash"

// Gemini implements Client against Google's Generative AI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini constructs a Gemini-backed client.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("AI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Ask sends the prompt and returns the completion text, or the fixed apology
// on any upstream failure. Errors never escape this boundary.
func (g *Gemini) Ask(ctx context.Context, prompt string) string {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		telemetry.Error("ai.ask_failed", map[string]any{"model": g.model, "error": err.Error()})
		return Apology
	}

	text := flattenResponse(resp)
	if text == "" {
		telemetry.Error("ai.empty_response", map[string]any{"model": g.model})
		return Apology
	}
	return text
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func flattenResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

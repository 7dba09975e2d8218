package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Gemini generates through the Google AI SDK with a caller-supplied key.
type Gemini struct {
	client    *genai.Client
	modelName string
}

// NewGemini dials the Gemini API.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, modelName: modelName}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

// Generate sends the windowed conversation as a chat session and returns the
// raw generated text.
func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("gemini: empty message list")
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(req.Temperature)
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.ForceJSON {
		model.ResponseMIMEType = "application/json"
	}
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	chat := model.StartChat()
	for _, m := range req.Messages[:len(req.Messages)-1] {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	last := req.Messages[len(req.Messages)-1]
	resp, err := chat.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	text := getText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini: no content returned")
	}
	return text, nil
}

func getText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}

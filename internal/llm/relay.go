package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Relay generates through a same-origin relay endpoint speaking the
// chat-completions wire format. The relay injects a server-held credential,
// so no API key travels with the request. Behavior is otherwise identical to
// the direct transport.
type Relay struct {
	endpoint   string
	modelName  string
	httpClient *http.Client
}

// NewRelay points the client at a relay endpoint.
func NewRelay(endpoint, modelName string) *Relay {
	if modelName == "" {
		modelName = "glm-4.7"
	}
	return &Relay{
		endpoint:   endpoint,
		modelName:  modelName,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float32         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate posts the conversation to the relay and returns the generated
// message text.
func (r *Relay) Generate(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model:       r.modelName,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	if req.ForceJSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	reqBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("relay: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("relay: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("relay: %w", err)
	}
	defer httpResp.Body.Close()

	respBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("relay: read response: %w", err)
	}

	var parsed chatResponse
	if httpResp.StatusCode != http.StatusOK {
		if json.Unmarshal(respBytes, &parsed) == nil && parsed.Error != nil {
			return "", fmt.Errorf("relay: status %d: %s", httpResp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("relay: status %s: %s", httpResp.Status, string(respBytes))
	}

	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("relay: unmarshal response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("relay: response missing content")
	}
	return parsed.Choices[0].Message.Content, nil
}

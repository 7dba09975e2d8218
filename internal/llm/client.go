// Package llm abstracts the external chat-completion collaborator. The core
// only ever sees role-tagged messages in and generated text out; every
// transport failure is recoverable at the call site.
package llm

import "context"

// Message roles as they appear on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry in the conversation payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries one generation call: system instructions, the bounded
// conversation window, and generation parameters. ForceJSON asks the provider
// for a JSON-object-shaped reply where the transport supports it.
type Request struct {
	System      string
	Messages    []Message
	Temperature float32
	MaxTokens   int
	ForceJSON   bool
}

// Client is the generation collaborator. Implementations must behave
// identically regardless of transport path (direct provider or relay).
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

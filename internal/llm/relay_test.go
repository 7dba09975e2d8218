package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRelayGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"story\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	relay := NewRelay(srv.URL, "")
	text, err := relay.Generate(context.Background(), Request{
		System:      "You are the narrator.",
		Messages:    []Message{{Role: RoleUser, Content: "begin"}},
		Temperature: 0.5,
		MaxTokens:   2500,
		ForceJSON:   true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != `{"story":"ok"}` {
		t.Errorf("text: %q", text)
	}

	if got.Model != "glm-4.7" {
		t.Errorf("default model: %q", got.Model)
	}
	if got.Temperature != 0.5 || got.MaxTokens != 2500 {
		t.Errorf("sampling params: %+v", got)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Errorf("response format: %+v", got.ResponseFormat)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("messages: got %d, want system + user", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "You are the narrator." {
		t.Errorf("system message: %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "begin" {
		t.Errorf("user message: %+v", got.Messages[1])
	}
}

func TestRelayGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":{"message":"upstream quota exceeded"}}`))
	}))
	defer srv.Close()

	relay := NewRelay(srv.URL, "custom-model")
	_, err := relay.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "begin"}},
	})
	if err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
	if !strings.Contains(err.Error(), "upstream quota exceeded") {
		t.Errorf("error should surface the relay message: %v", err)
	}
}

func TestRelayGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	relay := NewRelay(srv.URL, "")
	_, err := relay.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "begin"}},
	})
	if err == nil || !strings.Contains(err.Error(), "missing content") {
		t.Errorf("got %v, want missing-content error", err)
	}
}

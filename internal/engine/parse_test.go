package engine

import (
	"errors"
	"testing"
)

type reply struct {
	Story string `json:"story"`
}

func TestDecodeReplyStrict(t *testing.T) {
	var r reply
	if err := DecodeReply(`{"story": "clean"}`, &r); err != nil {
		t.Fatalf("strict parse failed: %v", err)
	}
	if r.Story != "clean" {
		t.Errorf("got %q", r.Story)
	}
}

func TestDecodeReplyFenced(t *testing.T) {
	text := "```json\n{\"story\": \"fenced\"}\n```"
	var r reply
	if err := DecodeReply(text, &r); err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}
	if r.Story != "fenced" {
		t.Errorf("got %q", r.Story)
	}
}

func TestDecodeReplyEmbedded(t *testing.T) {
	text := `Of course! Here is the scene you asked for: {"story": "embedded"} Hope you enjoy it.`
	var r reply
	if err := DecodeReply(text, &r); err != nil {
		t.Fatalf("embedded parse failed: %v", err)
	}
	if r.Story != "embedded" {
		t.Errorf("got %q", r.Story)
	}
}

func TestDecodeReplyNestedBraces(t *testing.T) {
	// Braces inside strings and nested objects must not fool the scanner.
	text := `preamble {"story": "a {weird} tale", "meta": {"depth": 2}} trailer`
	var r reply
	if err := DecodeReply(text, &r); err != nil {
		t.Fatalf("nested parse failed: %v", err)
	}
	if r.Story != "a {weird} tale" {
		t.Errorf("got %q", r.Story)
	}
}

func TestDecodeReplyNoJSON(t *testing.T) {
	var r reply
	err := DecodeReply("I cannot answer in JSON today.", &r)
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("got %v, want ErrNoJSON", err)
	}
}

package engine

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON reports that no JSON object could be recovered from a generated
// reply. Call sites treat it as a recoverable generation failure; it must
// never corrupt game state.
var ErrNoJSON = errors.New("no JSON object in reply")

// DecodeReply extracts the JSON object from a generated reply and unmarshals
// it into v. The narrator is asked for bare JSON but may wrap it in prose or
// code fences, so three attempts run in order: a strict parse, a parse after
// stripping fence markers, and a parse of the first balanced {...} substring.
func DecodeReply(text string, v any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(text), v); err == nil {
		return nil
	}

	if err := json.Unmarshal([]byte(stripFences(text)), v); err == nil {
		return nil
	}

	if obj := firstBalancedObject(text); obj != "" {
		if err := json.Unmarshal([]byte(obj), v); err == nil {
			return nil
		}
	}

	return ErrNoJSON
}

func stripFences(text string) string {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}

// firstBalancedObject returns the substring from the first '{' to its
// matching '}', counting brace depth and skipping braces inside JSON strings.
// Returns "" when no balanced object exists.
func firstBalancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

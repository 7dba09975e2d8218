package tui

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/epokha-game/epokha/internal/models"
)

// MatchChoice maps typed input onto one of the offered choices: a bare number
// picks by position, otherwise the text is matched against the choice labels
// with a length-scaled edit-distance tolerance. Returns -1 when nothing
// matches; the caller then treats the input as a free-form action.
func MatchChoice(input string, choices []models.Choice) int {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || len(choices) == 0 {
		return -1
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n >= 1 && n <= len(choices) {
			return n - 1
		}
		return -1
	}

	normalized := strings.ToLower(trimmed)
	for i, c := range choices {
		if strings.ToLower(c.Text) == normalized || strings.ToLower(c.Action) == normalized {
			return i
		}
	}

	best, bestDist := -1, -1
	for i, c := range choices {
		cand := strings.ToLower(c.Text)
		dist := levenshtein.ComputeDistance(normalized, cand)
		if dist > editLimit(len(cand)) {
			continue
		}
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func editLimit(length int) int {
	limit := length / 4
	if limit < 2 {
		limit = 2
	}
	return limit
}

package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/epokha-game/epokha/internal/llm"
	"github.com/epokha-game/epokha/internal/models"
)

type criticalBranch int

const (
	branchNone criticalBranch = iota
	branchMiracle
	branchGameOver
)

type criticalStat struct {
	Key   string
	Value int
	Info  models.StatInfo
}

// resolveCritical runs after every committed turn. A stat at exactly 0 or 10
// is critical; all critical stats are resolved together in a single branch —
// a one-time miracle rescue under normal difficulty, a terminal game over
// otherwise. At most one branch fires per turn.
func (e *Engine) resolveCritical(ctx context.Context, precedingStory string) criticalBranch {
	var crits []criticalStat
	for _, k := range models.StatKeys {
		v := e.state.Stats[k]
		if v <= 0 || v >= 10 {
			crits = append(crits, criticalStat{Key: k, Value: v, Info: models.StatsInfo[k]})
		}
	}
	if len(crits) == 0 {
		return branchNone
	}

	if e.state.Difficulty == models.DifficultyNormal && e.state.MiracleAvailable && !e.state.MiracleUsed {
		e.state.MiracleUsed = true
		e.state.MiracleAvailable = false

		// A partial reprieve, not a reset to the norm.
		for _, c := range crits {
			if c.Value <= 0 {
				e.state.Stats[c.Key] = 3
			} else {
				e.state.Stats[c.Key] = 7
			}
		}

		e.generateMiracle(ctx, crits, precedingStory)
		return branchMiracle
	}

	e.state.GameOver = true
	e.generateGameOver(ctx, crits, precedingStory)
	return branchGameOver
}

func (e *Engine) generateMiracle(ctx context.Context, crits []criticalStat, precedingStory string) {
	count := e.state.ChoicesCount()

	data := basePromptData(e.state)
	data.CritsDesc = miracleCritsDesc(crits)
	data.NPCsDesc = entityListing(e.state.NPCs, "Nobody")
	data.SummaryBlock = lifeStoryBlock(e.state)
	data.PrecedingStory = precedingStory
	data.ChoicesCount = count
	data.ChoicesTemplate = choicesTemplate(count)

	var reply struct {
		MiracleStory string          `json:"miracle_story"`
		Choices      []models.Choice `json:"choices"`
	}

	var buf strings.Builder
	err := miracleTmpl.Execute(&buf, data)
	if err == nil {
		var raw string
		raw, err = e.client.Generate(ctx, llm.Request{
			System: buf.String(),
			Messages: []llm.Message{{
				Role:    llm.RoleUser,
				Content: "Continue the story: describe the miracle rescue and offer choices for what comes after it.",
			}},
			Temperature: turnTemperature,
			MaxTokens:   turnMaxTokens,
			ForceJSON:   true,
		})
		if err == nil {
			err = DecodeReply(raw, &reply)
		}
	}

	if err != nil || reply.MiracleStory == "" {
		// The game must always be able to continue: hardcoded rescue.
		log.Printf("miracle generation failed, using fallback: %v", err)
		reply.MiracleStory = "But fate relented at the very last moment. By some miracle, everything worked out..."
		reply.Choices = fallbackMiracleChoices(count)
	}

	e.state.LastMiracle = reply.MiracleStory
	if len(reply.Choices) > 0 {
		e.state.LastChoices = reply.Choices
	}

	// A synthetic assistant entry keeps future context coherent: the original
	// story and the rescue read as one reply.
	synthetic, marshalErr := json.Marshal(map[string]any{
		"story":   e.state.LastStory + "\n\n---\n\n**✨ MIRACLE RESCUE**\n\n" + reply.MiracleStory,
		"choices": e.state.LastChoices,
	})
	if marshalErr == nil {
		e.state.History = append(e.state.History, models.Turn{Role: "assistant", Content: string(synthetic)})
	}
}

func (e *Engine) generateGameOver(ctx context.Context, crits []criticalStat, precedingStory string) {
	data := basePromptData(e.state)
	data.CritsDesc = gameOverCritsDesc(crits)
	data.NPCsDesc = entityListing(e.state.NPCs, "Nobody")
	data.ItemsDesc = entityListing(e.state.Inventory, "Nothing")
	data.SummaryBlock = lifeStoryBlock(e.state)
	data.PrecedingStory = precedingStory
	data.HistoryDesc = historyTranscript(e.state)

	var payload models.GameOverData

	var buf strings.Builder
	err := gameOverTmpl.Execute(&buf, data)
	if err == nil {
		var raw string
		raw, err = e.client.Generate(ctx, llm.Request{
			System: buf.String(),
			Messages: []llm.Message{{
				Role:    llm.RoleUser,
				Content: "Continue the story: write the tragic finale that follows from the events above. Write at length, in detail.",
			}},
			Temperature: turnTemperature,
			MaxTokens:   turnMaxTokens,
			ForceJSON:   true,
		})
		if err == nil {
			err = DecodeReply(raw, &payload)
		}
	}

	if err != nil || payload.Epilogue == "" {
		// The terminal state is always fully populated, external call or not.
		log.Printf("epilogue generation failed, using fallback: %v", err)
		payload = fallbackGameOver(e.state, crits)
	}

	e.state.GameOverData = &payload
}

func miracleCritsDesc(crits []criticalStat) string {
	lines := make([]string, 0, len(crits))
	for _, c := range crits {
		if c.Value <= 0 {
			lines = append(lines, fmt.Sprintf("- %s: %s (was %d/10, rolled back to 3/10)", c.Info.Name, c.Info.Low, c.Value))
		} else {
			lines = append(lines, fmt.Sprintf("- %s: %s (was %d/10, rolled back to 7/10)", c.Info.Name, c.Info.High, c.Value))
		}
	}
	return strings.Join(lines, "\n")
}

func gameOverCritsDesc(crits []criticalStat) string {
	lines := make([]string, 0, len(crits))
	for _, c := range crits {
		guidance := c.Info.High
		if c.Value <= 0 {
			guidance = c.Info.Low
		}
		lines = append(lines, fmt.Sprintf("- %s: %s (value %d/10)", c.Info.Name, guidance, c.Value))
	}
	return strings.Join(lines, "\n")
}

func lifeStoryBlock(s *models.GameState) string {
	if s.LifeSummary == "" {
		return ""
	}
	return fmt.Sprintf("\n=== LIFE STORY ===\n%s\n", s.LifeSummary)
}

func fallbackMiracleChoices(count int) []models.Choice {
	choices := []models.Choice{
		{Text: "Try to make sense of what happened", Action: "The hero tries to understand what happened and how they survived"},
		{Text: "Thank whoever helped", Action: "The hero thanks the rescuer"},
		{Text: "Move on without looking back", Action: "The hero decides to forget what happened and keep going"},
	}
	if count >= 4 {
		choices = append(choices, models.Choice{
			Text:   "Take the lesson and change",
			Action: "The hero resolves to change their life after what they lived through",
		})
	}
	return choices
}

func fallbackGameOver(s *models.GameState, crits []criticalStat) models.GameOverData {
	loc := s.Location()
	reasons := make([]string, 0, len(crits))
	for _, c := range crits {
		reasons = append(reasons, c.Info.Name+" reached a critical level")
	}
	return models.GameOverData{
		Epilogue: fmt.Sprintf("The story ended at %d years old. %s in the nineties showed no mercy...", s.Age, loc.FullName),
		Reasons:  reasons,
		Epitaph:  "The era of change took them early",
	}
}

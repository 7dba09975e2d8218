package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/epokha-game/epokha/internal/llm"
)

// keepAfterSummary is how many raw history entries survive a compaction; the
// digest carries everything older.
const keepAfterSummary = 6

// compactLifeSummary asks the narrator to compress the life so far into a
// running prose digest, then truncates the raw history. On any failure the
// summary, history, and cadence marker are all left untouched — the enclosing
// turn logs and proceeds on the full history.
func (e *Engine) compactLifeSummary(ctx context.Context) error {
	s := e.state

	data := basePromptData(s)
	data.StatsJSON = statsJSON(s)
	data.NPCsDesc = entityListing(s.NPCs, "None")
	data.ItemsDesc = entityListing(s.Inventory, "None")
	data.HistoryDesc = historyTranscript(s)
	if s.LifeSummary != "" {
		data.PrevSummary = fmt.Sprintf("\nPREVIOUS DIGEST:\n%s\n", s.LifeSummary)
	}

	var buf strings.Builder
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return err
	}

	raw, err := e.client.Generate(ctx, llm.Request{
		System:      buf.String(),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: "Compose the digest."}},
		Temperature: turnTemperature,
		MaxTokens:   turnMaxTokens,
		ForceJSON:   true,
	})
	if err != nil {
		return err
	}

	var reply struct {
		Summary string `json:"summary"`
	}
	if err := DecodeReply(raw, &reply); err != nil {
		return err
	}
	if reply.Summary == "" {
		return fmt.Errorf("summary reply missing summary text")
	}

	s.LifeSummary = reply.Summary
	if len(s.History) > keepAfterSummary {
		s.History = s.History[len(s.History)-keepAfterSummary:]
	}
	s.LastSummaryTurn = s.TurnCount
	return nil
}

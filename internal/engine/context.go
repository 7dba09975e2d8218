package engine

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/epokha-game/epokha/internal/llm"
	"github.com/epokha-game/epokha/internal/models"
)

//go:embed prompts/turn.txt
var turnPrompt string

//go:embed prompts/miracle.txt
var miraclePrompt string

//go:embed prompts/gameover.txt
var gameOverPrompt string

//go:embed prompts/summary.txt
var summaryPrompt string

var (
	turnTmpl     = template.Must(template.New("turn").Parse(turnPrompt))
	miracleTmpl  = template.Must(template.New("miracle").Parse(miraclePrompt))
	gameOverTmpl = template.Must(template.New("gameover").Parse(gameOverPrompt))
	summaryTmpl  = template.Must(template.New("summary").Parse(summaryPrompt))
)

// TurnContext is the assembled payload for one generation call: the rendered
// system prompt, the bounded history window, and the turn parameters the
// engine needs after the call resolves. Building it performs no mutation.
type TurnContext struct {
	System        string
	Window        []llm.Message
	NextSeasonIdx int
	NextYear      int
	NextSeason    string
	ChoicesCount  int
}

type promptData struct {
	GenderName      string
	Age             int
	LocationFull    string
	LocationDesc    string
	Season          string
	Year            int
	NextSeason      string
	NextYear        int
	SummaryBlock    string
	ContextBlock    string
	StatsDesc       string
	StatsJSON       string
	ChoicesCount    int
	ChoicesTemplate string
	CritsDesc       string
	NPCsDesc        string
	ItemsDesc       string
	HistoryDesc     string
	PrecedingStory  string
	PrevSummary     string
}

// BuildTurnContext assembles everything the next generation call needs from
// the current state.
func BuildTurnContext(s *models.GameState) (*TurnContext, error) {
	nextSeasonIdx, nextYear := s.PeekNext()
	count := s.ChoicesCount()

	data := basePromptData(s)
	data.NextSeason = models.Seasons[nextSeasonIdx]
	data.NextYear = nextYear
	data.SummaryBlock = summaryBlock(s)
	data.ContextBlock = contextBlock(s)
	data.StatsDesc = statsDescription(s)
	data.StatsJSON = statsJSON(s)
	data.ChoicesCount = count
	data.ChoicesTemplate = choicesTemplate(count)

	var buf strings.Builder
	if err := turnTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return &TurnContext{
		System:        buf.String(),
		Window:        historyWindow(s),
		NextSeasonIdx: nextSeasonIdx,
		NextYear:      nextYear,
		NextSeason:    models.Seasons[nextSeasonIdx],
		ChoicesCount:  count,
	}, nil
}

func basePromptData(s *models.GameState) promptData {
	loc := s.Location()
	return promptData{
		GenderName:   genderName(s.Gender),
		Age:          s.Age,
		LocationFull: loc.FullName,
		LocationDesc: loc.Desc,
		Season:       models.Seasons[s.SeasonIdx],
		Year:         s.Year,
	}
}

func genderName(gender string) string {
	if gender == "female" {
		return "Girl"
	}
	return "Boy"
}

// historyWindow returns the conversational window sent with each call. The
// stored history is already capped, so the window is the whole of it.
func historyWindow(s *models.GameState) []llm.Message {
	window := make([]llm.Message, 0, len(s.History))
	for _, t := range s.History {
		window = append(window, llm.Message{Role: t.Role, Content: t.Content})
	}
	return window
}

func summaryBlock(s *models.GameState) string {
	if s.LifeSummary == "" {
		return ""
	}
	return fmt.Sprintf("\n=== SHORT HISTORY OF THE HERO'S LIFE (digest of earlier events) ===\n%s\n", s.LifeSummary)
}

func contextBlock(s *models.GameState) string {
	var b strings.Builder
	b.WriteString("\n=== PEOPLE around ===\n")
	if len(s.NPCs) > 0 {
		for _, n := range s.NPCs {
			fmt.Fprintf(&b, "- %s: %s\n", n.Name, n.Desc)
		}
	} else {
		b.WriteString("Nobody nearby.\n")
	}

	b.WriteString("\n=== THINGS and perks of the HERO ===\n")
	if len(s.Inventory) > 0 {
		for _, i := range s.Inventory {
			fmt.Fprintf(&b, "- %s: %s\n", i.Name, i.Desc)
		}
	} else {
		b.WriteString("Nothing.\n")
	}
	return b.String()
}

func statsDescription(s *models.GameState) string {
	var b strings.Builder
	b.WriteString("CURRENT STATE OF THE HERO:\n")
	for _, k := range models.StatKeys {
		b.WriteString(models.StatTier(k, s.Stats[k]))
		b.WriteByte('\n')
	}
	return b.String()
}

// statsJSON renders the stat map in fixed key order so prompts are stable.
func statsJSON(s *models.GameState) string {
	parts := make([]string, 0, len(models.StatKeys))
	for _, k := range models.StatKeys {
		parts = append(parts, fmt.Sprintf("%q:%d", k, s.Stats[k]))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func choicesTemplate(count int) string {
	lines := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		lines = append(lines, fmt.Sprintf(`        {"text": "Action %d", "action": "an expanded literary description of action %d"}`, i, i))
	}
	return strings.Join(lines, ",\n")
}

func entityListing(list models.EntityList, empty string) string {
	if len(list) == 0 {
		return empty
	}
	lines := make([]string, 0, len(list))
	for _, e := range list {
		lines = append(lines, fmt.Sprintf("- %s: %s", e.Name, e.Desc))
	}
	return strings.Join(lines, "\n")
}

// historyTranscript flattens the conversation for the summary and epilogue
// prompts. Assistant entries are raw JSON replies; the story is lifted out
// when it parses, the raw text kept when it does not.
func historyTranscript(s *models.GameState) string {
	lines := make([]string, 0, len(s.History))
	for _, t := range s.History {
		if t.Role == "user" {
			lines = append(lines, ">> Choice: "+t.Content)
			continue
		}
		content := t.Content
		var reply struct {
			Story string `json:"story"`
		}
		if err := json.Unmarshal([]byte(t.Content), &reply); err == nil && reply.Story != "" {
			content = reply.Story
		}
		lines = append(lines, "<< "+content)
	}
	return strings.Join(lines, "\n\n")
}

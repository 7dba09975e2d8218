package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/epokha-game/epokha/internal/config"
	"github.com/epokha-game/epokha/internal/engine"
	"github.com/epokha-game/epokha/internal/llm"
	"github.com/epokha-game/epokha/internal/models"
	"github.com/epokha-game/epokha/internal/start"
)

const saveSlot = "current"

type sessionState int

const (
	stateSetup sessionState = iota
	stateLoading
	statePlaying
	stateFailed
	stateGameOver
	stateError
)

type setupStep int

const (
	stepGender setupStep = iota
	stepLocationType
	stepPlace
	stepPace
	stepDifficulty
	stepAge
	stepPreview
)

type model struct {
	state  sessionState
	step   setupStep
	engine *engine.Engine
	client llm.Client
	rng    *rand.Rand

	settings models.Settings
	roll     *models.StartRoll

	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	err       error
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	miracleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

func newModel(client llm.Client) model {
	ti := textinput.New()
	ti.Placeholder = "boy / girl"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return model{
		state:     stateSetup,
		step:      stepGender,
		client:    client,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		textInput: ti,
		settings: models.Settings{
			Gender:       "male",
			LocationType: "capital",
			Region:       "central",
			City:         "moscow",
			Pace:         models.PaceSeason,
			Difficulty:   models.DifficultyNormal,
			StartAge:     7,
		},
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type turnDoneMsg struct {
	res *engine.TurnResult
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			switch m.state {
			case stateSetup:
				return m.handleSetupInput(m.textInput.Value())
			case statePlaying:
				return m.handleActionInput(m.textInput.Value())
			case stateFailed:
				m.state = stateLoading
				return m, m.retryTurn()
			case stateGameOver:
				if strings.EqualFold(strings.TrimSpace(m.textInput.Value()), "n") {
					return m.resetToSetup()
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.72)
		m.viewport.Height = msg.Height - 6
		if m.gameLog != "" {
			m.viewport.SetContent(m.gameLog)
		}

	case turnDoneMsg:
		return m.handleTurnDone(msg)
	}

	if m.state == stateSetup || m.state == statePlaying || m.state == stateGameOver {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handleSetupInput(raw string) (tea.Model, tea.Cmd) {
	input := strings.ToLower(strings.TrimSpace(raw))
	m.textInput.Reset()

	switch m.step {
	case stepGender:
		switch input {
		case "girl", "female", "2":
			m.settings.Gender = "female"
		default:
			m.settings.Gender = "male"
		}
		m.step = stepLocationType
		m.textInput.Placeholder = "village / town / capital"

	case stepLocationType:
		switch input {
		case "village", "1":
			m.settings.LocationType = "village"
		case "town", "2":
			m.settings.LocationType = "town"
		default:
			m.settings.LocationType = "capital"
		}
		m.step = stepPlace
		if m.settings.LocationType == "capital" {
			m.textInput.Placeholder = "moscow / petersburg / novosibirsk"
		} else {
			m.textInput.Placeholder = "central / north / south / siberia"
		}

	case stepPlace:
		if m.settings.LocationType == "capital" {
			if _, ok := models.Cities[input]; ok {
				m.settings.City = input
			}
		} else {
			if _, ok := models.Regions[input]; ok {
				m.settings.Region = input
			}
		}
		m.step = stepPace
		m.textInput.Placeholder = "seasons / years"

	case stepPace:
		if input == "years" || input == "year" {
			m.settings.Pace = models.PaceYear
		} else {
			m.settings.Pace = models.PaceSeason
		}
		m.step = stepDifficulty
		m.textInput.Placeholder = "normal / hardcore"

	case stepDifficulty:
		if input == "hardcore" {
			m.settings.Difficulty = models.DifficultyHardcore
		} else {
			m.settings.Difficulty = models.DifficultyNormal
		}
		m.step = stepAge
		m.textInput.Placeholder = "starting age, 5-12"

	case stepAge:
		if age, err := strconv.Atoi(input); err == nil && age >= 5 && age <= 12 {
			m.settings.StartAge = age
		}
		m.roll = start.Roll(m.rng, m.settings)
		m.step = stepPreview
		m.textInput.Placeholder = "enter to begin, r to reroll"

	case stepPreview:
		if input == "r" {
			m.roll = start.Roll(m.rng, m.settings)
			return m, nil
		}
		return m.beginGame()
	}

	return m, nil
}

func (m model) beginGame() (tea.Model, tea.Cmd) {
	state := models.NewGameState(m.settings, m.roll)
	m.engine = engine.New(m.client, state, saveSlot)
	m.state = stateLoading
	m.textInput.Reset()
	m.textInput.Placeholder = "What do you do?"
	return m, m.submitTurn(engine.FirstAction)
}

func (m model) resumeGame(state *models.GameState) model {
	m.engine = engine.New(m.client, state, saveSlot)
	if state.GameOver {
		m.state = stateGameOver
		m.gameLog = m.renderGameOver()
	} else {
		m.state = statePlaying
		m.gameLog = m.renderScene(&engine.TurnResult{
			Story:   state.LastStory,
			Choices: state.LastChoices,
		})
	}
	m.textInput.Placeholder = "What do you do?"
	return m
}

func (m model) handleActionInput(raw string) (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return m, nil
	}
	m.textInput.Reset()

	if input == "/quit" {
		return m, tea.Quit
	}

	action := input
	choices := m.engine.State().LastChoices
	if idx := MatchChoice(input, choices); idx >= 0 {
		action = choices[idx].Action
	}

	m.appendLog(userStyle.Width(m.logWidth()).Render("> " + action))
	m.state = stateLoading
	return m, m.submitTurn(action)
}

func (m model) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, engine.ErrGameOver) {
			m.state = stateGameOver
			return m, nil
		}
		m.err = msg.err
		m.state = stateFailed
		return m, nil
	}

	m.appendLog(m.renderScene(msg.res))

	if msg.res.GameOver != nil {
		m.state = stateGameOver
		m.textInput.Placeholder = "n for a new life"
	} else {
		m.state = statePlaying
	}
	return m, nil
}

func (m *model) appendLog(block string) {
	if m.gameLog != "" {
		m.gameLog += "\n\n"
	}
	m.gameLog += block
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(m.logWidth(), m.height-6)
	}
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	w := int(float64(m.width) * 0.72)
	if w <= 0 {
		w = 80
	}
	return w
}

func (m model) renderScene(res *engine.TurnResult) string {
	width := m.logWidth()
	var b strings.Builder
	b.WriteString(gameStyle.Width(width).Render(res.Story))

	if res.Miracle != "" {
		b.WriteString("\n\n")
		b.WriteString(miracleStyle.Render("✨ MIRACLE RESCUE"))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Fate relented... this once. No more miracles."))
		b.WriteString("\n\n")
		b.WriteString(gameStyle.Width(width).Render(res.Miracle))
	}

	if res.GameOver != nil {
		b.WriteString("\n\n")
		b.WriteString(m.renderGameOver())
		return b.String()
	}

	if len(res.Choices) > 0 {
		b.WriteString("\n")
		for i, c := range res.Choices {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, c.Action))
		}
	}
	return b.String()
}

func (m model) renderGameOver() string {
	s := m.engine.State()
	god := s.GameOverData
	if god == nil {
		return dangerStyle.Render("💀 GAME OVER")
	}

	width := m.logWidth()
	var b strings.Builder
	b.WriteString(dangerStyle.Render("💀 GAME OVER"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s, %d years old", s.DateLabel(), s.Age)))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("🕯️ Epilogue"))
	b.WriteString("\n")
	b.WriteString(gameStyle.Width(width).Render(god.Epilogue))
	if len(god.Reasons) > 0 {
		b.WriteString("\n\n")
		b.WriteString("What led to the tragedy:")
		for _, r := range god.Reasons {
			b.WriteString("\n  - " + r)
		}
	}
	if god.Epitaph != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(`"` + god.Epitaph + `"`))
	}
	return b.String()
}

func (m model) View() string {
	switch m.state {
	case stateSetup:
		return "\n" + m.viewSetup() + "\n"

	case stateLoading:
		return "\n  The story is being written... please wait.\n"

	case stateFailed:
		return fmt.Sprintf(
			"\n%s\n\n%v\n\n%s\n",
			dangerStyle.Render("The narrator stumbled."),
			m.err,
			helpStyle.Render("Press Enter to retry the same action, Esc to quit."),
		)

	case stateError:
		return fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.\n", m.err)
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), m.renderPanel())
	help := helpStyle.Render("Pick a choice by number, or type your own action. /quit to leave.")
	if m.state == stateGameOver {
		help = helpStyle.Render("Type n and press Enter to start a new life.")
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) viewSetup() string {
	var question string
	switch m.step {
	case stepGender:
		question = "Who is growing up in the nineties — a boy or a girl?"
	case stepLocationType:
		question = "Where: a village, a provincial town, or a capital city?"
	case stepPlace:
		if m.settings.LocationType == "capital" {
			question = "Which city?"
		} else {
			question = "Which region?"
		}
	case stepPace:
		question = "Pace of the story: by seasons (one season per turn) or by years (nine months per turn)?"
	case stepDifficulty:
		question = "Difficulty: normal (4 choices, one miracle rescue) or hardcore (3 choices, no mercy)?"
	case stepAge:
		question = "Starting age?"
	case stepPreview:
		return m.viewPreview()
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		titleStyle.Render("EPOKHA — a life in the nineties"),
		question,
		m.textInput.View(),
	)
}

func (m model) viewPreview() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🎲 Starting hand"))
	b.WriteString("\n\nPeople close to you:\n")
	for _, n := range m.roll.NPCs {
		b.WriteString(fmt.Sprintf("  • %s — %s\n", n.Name, n.Desc))
	}
	b.WriteString("\nThings:\n")
	for _, it := range m.roll.Items {
		sign := ""
		if it.Mod > 0 {
			sign = "+"
		}
		statName := models.StatsInfo[it.Stat].Name
		b.WriteString(fmt.Sprintf("  • %s — %s (%s%d %s)\n", it.Name, it.Desc, sign, it.Mod, statName))
	}
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	return b.String()
}

func (m model) renderPanel() string {
	if m.engine == nil {
		return ""
	}
	s := m.engine.State()
	loc := s.Location()

	var b strings.Builder
	b.WriteString(titleStyle.Render("WHEN & WHERE"))
	b.WriteString(fmt.Sprintf("\n%s | %d years old\n%s\n\n", s.DateLabel(), s.Age, loc.FullName))

	b.WriteString(titleStyle.Render("MODE"))
	if s.Difficulty == models.DifficultyHardcore {
		b.WriteString("\n💀 Hardcore\n")
	} else if s.MiracleUsed {
		b.WriteString("\n🛡️ Normal · miracle spent\n")
	} else {
		b.WriteString("\n🛡️ Normal · miracle in reserve\n")
	}
	if s.LifeSummary != "" {
		b.WriteString(fmt.Sprintf("📝 digest at turn %d\n", s.LastSummaryTurn))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("STATS"))
	b.WriteString("\n")
	for _, k := range models.StatKeys {
		b.WriteString(fmt.Sprintf("%-14s %2d\n", models.StatsInfo[k].Name, s.Stats[k]))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("PEOPLE"))
	b.WriteString("\n")
	if len(s.NPCs) == 0 {
		b.WriteString("(nobody)\n")
	}
	for _, n := range s.NPCs {
		b.WriteString("- " + n.Name + "\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("THINGS"))
	b.WriteString("\n")
	if len(s.Inventory) == 0 {
		b.WriteString("(empty)\n")
	}
	for _, it := range s.Inventory {
		b.WriteString("- " + it.Name + "\n")
	}

	panelWidth := int(float64(m.width) * 0.25)
	return panelStyle.Width(panelWidth).Height(m.viewport.Height).Render(b.String())
}

func (m model) resetToSetup() (tea.Model, tea.Cmd) {
	if err := models.DeleteSave(saveSlot); err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	fresh := newModel(m.client)
	fresh.width, fresh.height = m.width, m.height
	return fresh, textinput.Blink
}

func (m model) submitTurn(action string) tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		res, err := eng.SubmitAction(context.Background(), action)
		return turnDoneMsg{res: res, err: err}
	}
}

func (m model) retryTurn() tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		res, err := eng.Retry(context.Background())
		return turnDoneMsg{res: res, err: err}
	}
}

// Run starts the TUI, resuming a saved life when one exists.
func Run(client llm.Client) error {
	m := newModel(client)
	if models.HasSave(saveSlot) {
		state, err := models.LoadState(saveSlot)
		if err != nil {
			return fmt.Errorf("loading saved game: %w", err)
		}
		m = m.resumeGame(state)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start is the convenience entry point: load config, pick a transport, run.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.SaveDir != "" {
		models.SaveDir = cfg.SaveDir
	}

	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		gem, err := llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return err
		}
		defer gem.Close()
		client = gem
	} else {
		client = llm.NewRelay(cfg.RelayURL, cfg.Model)
	}

	return Run(client)
}

// Package engine drives one life: it turns a player's free-text action into a
// bounded generation request, interprets the structured reply, mutates game
// state under the viscosity rules, and resolves the critical branches.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/epokha-game/epokha/internal/llm"
	"github.com/epokha-game/epokha/internal/models"
)

const (
	// HistoryLimit caps the raw conversation; oldest turns are discarded
	// first. Compaction (see summary.go) keeps long games coherent anyway.
	HistoryLimit = 20
	// SummaryInterval is the compaction cadence in turns.
	SummaryInterval = 10
	// minHistoryForSummary gates compaction until there is enough raw
	// history to be worth compressing.
	minHistoryForSummary = 10

	turnTemperature = 0.5
	turnMaxTokens   = 2500
)

// FirstAction opens a fresh game.
const FirstAction = "The game begins. Describe the surroundings and introduce the hero."

var (
	ErrGameOver       = errors.New("the game is over")
	ErrBusy           = errors.New("a turn is already in flight")
	ErrMalformedReply = errors.New("narrator returned a malformed reply")
	ErrNothingToRetry = errors.New("no failed turn to retry")
)

// EventType identifies the discrete notifications the engine emits so a
// presentation layer can subscribe instead of being called into directly.
type EventType string

const (
	EventTurnResolved     EventType = "turnResolved"
	EventTurnFailed       EventType = "turnFailed"
	EventMiracleResolved  EventType = "miracleResolved"
	EventGameOverResolved EventType = "gameOverResolved"
)

// Event is one engine notification.
type Event struct {
	Type EventType
	Err  error // set for EventTurnFailed
}

// TurnResult is what a committed turn exposes to the caller.
type TurnResult struct {
	Story   string
	Choices []models.Choice
	// Miracle holds the rescue continuation when the miracle branch fired
	// this turn.
	Miracle string
	// GameOver is the epilogue payload when this turn ended the game.
	GameOver *models.GameOverData
}

// Engine owns one GameState and serializes all mutation of it. One logical
// thread of control per game: the busy flag rejects overlapping submissions,
// and the summary, turn, and critical calls are strictly sequenced inside a
// single SubmitAction.
type Engine struct {
	client   llm.Client
	state    *models.GameState
	rng      *rand.Rand
	saveSlot string

	busy      bool
	listeners []func(Event)

	retryAction string
	hasRetry    bool
}

// New wires an engine around an existing state. saveSlot names the save file
// written after each committed turn; empty disables persistence.
func New(client llm.Client, state *models.GameState, saveSlot string) *Engine {
	return &Engine{
		client:   client,
		state:    state,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		saveSlot: saveSlot,
	}
}

// State exposes the engine's state container for rendering. Callers must not
// mutate it.
func (e *Engine) State() *models.GameState {
	return e.state
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}

// turnReply is the structured payload expected from the main turn call.
type turnReply struct {
	Story   string          `json:"story"`
	Choices []models.Choice `json:"choices"`
	Updates *updates        `json:"updates"`
}

// updates carries per-stat deltas plus optional entity instructions. Deltas
// arrive as JSON numbers and are truncated to ints; the ±2 clamp happens in
// the stat model.
type updates struct {
	Mind      float64 `json:"mind"`
	Body      float64 `json:"body"`
	Family    float64 `json:"family"`
	Friends   float64 `json:"friends"`
	Health    float64 `json:"health"`
	Looks     float64 `json:"looks"`
	Wealth    float64 `json:"wealth"`
	Authority float64 `json:"authority"`

	AddItem    *models.Entity `json:"add_item"`
	RemoveItem string         `json:"remove_item"`
	UpdateItem *models.Entity `json:"update_item"`
	AddNPC     *models.Entity `json:"add_npc"`
	RemoveNPC  string         `json:"remove_npc"`
	UpdateNPC  *models.Entity `json:"update_npc"`
}

func (u *updates) statDeltas() map[string]int {
	return map[string]int{
		"mind":      int(u.Mind),
		"body":      int(u.Body),
		"family":    int(u.Family),
		"friends":   int(u.Friends),
		"health":    int(u.Health),
		"looks":     int(u.Looks),
		"wealth":    int(u.Wealth),
		"authority": int(u.Authority),
	}
}

// SubmitAction resolves one player action end to end: compaction check,
// context build, generation call, validation, state mutation, critical-state
// resolution, persistence. A failed call or malformed reply leaves the state
// untouched except for the turn counter, which Retry winds back.
func (e *Engine) SubmitAction(ctx context.Context, action string) (*TurnResult, error) {
	if e.state.GameOver {
		return nil, ErrGameOver
	}
	if e.busy {
		return nil, ErrBusy
	}
	e.busy = true
	defer func() { e.busy = false }()

	e.state.TurnCount++

	if e.state.TurnCount-e.state.LastSummaryTurn >= SummaryInterval &&
		len(e.state.History) >= minHistoryForSummary {
		if err := e.compactLifeSummary(ctx); err != nil {
			// Non-fatal: the turn proceeds on the uncompacted history.
			log.Printf("life summary compaction failed: %v", err)
		}
	}

	tc, err := BuildTurnContext(e.state)
	if err != nil {
		return e.failTurn(action, err)
	}

	userMsg := fmt.Sprintf(
		"My choice: %s. (Generate an atmospheric account of the chosen action's outcome and the transition into %s %d)",
		action, tc.NextSeason, tc.NextYear,
	)
	raw, err := e.client.Generate(ctx, llm.Request{
		System:      tc.System,
		Messages:    append(tc.Window, llm.Message{Role: llm.RoleUser, Content: userMsg}),
		Temperature: turnTemperature,
		MaxTokens:   turnMaxTokens,
		ForceJSON:   true,
	})
	if err != nil {
		return e.failTurn(action, err)
	}

	var reply turnReply
	if err := DecodeReply(raw, &reply); err != nil || reply.Story == "" || len(reply.Choices) == 0 {
		return e.failTurn(action, ErrMalformedReply)
	}

	e.state.History = append(e.state.History,
		models.Turn{Role: "user", Content: action},
		models.Turn{Role: "assistant", Content: raw},
	)
	if len(e.state.History) > HistoryLimit {
		e.state.History = e.state.History[len(e.state.History)-HistoryLimit:]
	}

	e.applyUpdates(reply.Updates)
	e.state.LastStory = reply.Story
	e.state.LastChoices = reply.Choices
	e.state.LastMiracle = ""
	e.state.CommitAdvance()

	branch := e.resolveCritical(ctx, e.state.LastStory)

	e.persist()
	e.retryAction, e.hasRetry = "", false

	res := &TurnResult{
		Story:    e.state.LastStory,
		Choices:  e.state.LastChoices,
		Miracle:  e.state.LastMiracle,
		GameOver: e.state.GameOverData,
	}
	e.emit(Event{Type: EventTurnResolved})
	switch branch {
	case branchMiracle:
		e.emit(Event{Type: EventMiracleResolved})
	case branchGameOver:
		e.emit(Event{Type: EventGameOverResolved})
	}
	return res, nil
}

// Retry resubmits the action whose turn failed, first winding the turn
// counter back so the failed attempt is not double-counted.
func (e *Engine) Retry(ctx context.Context) (*TurnResult, error) {
	if !e.hasRetry {
		return nil, ErrNothingToRetry
	}
	action := e.retryAction
	e.state.TurnCount--
	return e.SubmitAction(ctx, action)
}

// CanRetry reports whether a failed turn is waiting for Retry.
func (e *Engine) CanRetry() bool {
	return e.hasRetry
}

func (e *Engine) failTurn(action string, err error) (*TurnResult, error) {
	e.retryAction, e.hasRetry = action, true
	e.emit(Event{Type: EventTurnFailed, Err: err})
	if errors.Is(err, ErrMalformedReply) {
		return nil, err
	}
	return nil, fmt.Errorf("turn generation failed: %w", err)
}

func (e *Engine) applyUpdates(u *updates) {
	if u == nil {
		return
	}

	deltas := u.statDeltas()
	for _, k := range models.StatKeys {
		if d := deltas[k]; d != 0 {
			e.state.ApplyDelta(k, d, e.rng)
		}
	}

	// Entity updates are stamped with the in-world date of the turn being
	// applied, before the clock advances.
	label := e.state.DateLabel()

	if u.AddItem != nil {
		e.state.Inventory.AddOrIgnore(u.AddItem.Name, u.AddItem.Desc)
	}
	e.state.Inventory.Remove(u.RemoveItem)
	if u.UpdateItem != nil {
		e.state.Inventory.AppendUpdate(u.UpdateItem.Name, u.UpdateItem.Desc, label)
	}

	if u.AddNPC != nil {
		e.state.NPCs.AddOrIgnore(u.AddNPC.Name, u.AddNPC.Desc)
	}
	e.state.NPCs.Remove(u.RemoveNPC)
	if u.UpdateNPC != nil {
		e.state.NPCs.AppendUpdate(u.UpdateNPC.Name, u.UpdateNPC.Desc, label)
	}
}

func (e *Engine) persist() {
	if e.saveSlot == "" {
		return
	}
	if err := e.state.Save(e.saveSlot); err != nil {
		log.Printf("saving game state failed: %v", err)
	}
}

package models

import (
	"fmt"
	"math/rand/v2"
)

// StatKeys is the fixed set of attributes, in display order. Every GameState
// carries exactly these keys, each clamped to [0,10] with 5 as the norm.
var StatKeys = []string{
	"mind", "body", "family", "friends", "health", "looks", "wealth", "authority",
}

// StatInfo describes one attribute for prompt building: a display name plus
// narrative guidance for the low and high failure directions. Both extremes
// are problems; high values are sources of tension, not rewards.
type StatInfo struct {
	Name string
	Low  string
	High string
}

// StatsInfo keys match StatKeys.
var StatsInfo = map[string]StatInfo{
	"mind": {
		Name: "Mind",
		Low:  "slow-witted, failing at school, easily tricked by anyone",
		High: "lonely prodigy, envied and resented, too clever for their own age",
	},
	"body": {
		Name: "Body",
		Low:  "frail and weak, last picked, pushed around in the yard",
		High: "aggressive, overestimates their strength, injuries from recklessness",
	},
	"family": {
		Name: "Family",
		Low:  "divorce, empty apartment, parents drifting away or gone",
		High: "suffocating overprotection, total control, not a step without permission",
	},
	"friends": {
		Name: "Friends",
		Low:  "loneliness, eating alone, nobody to call",
		High: "a bad crowd, group pressure, dragged into whatever the gang does",
	},
	"health": {
		Name: "Health",
		Low:  "chronic illness, clinics and queues, always the sick one",
		High: "reckless invulnerability, seeks out danger, never sees the risk",
	},
	"looks": {
		Name: "Looks",
		Low:  "teased for appearance, hand-me-downs, avoids mirrors",
		High: "unhealthy attention, envy, judged only by the surface",
	},
	"wealth": {
		Name: "Wealth",
		Low:  "poverty, hunger, debts, the lights cut off again",
		High: "dangerous money, racket, shakedowns, the wrong people paying attention",
	},
	"authority": {
		Name: "Peer authority",
		Low:  "pushover, bullied, cannot say no to anyone",
		High: "stubborn to a fault, picks fights with anyone above, never backs down",
	},
}

const (
	statMin  = 0
	statMax  = 10
	statNorm = 5

	// maxDeltaPerTurn bounds a single proposed change regardless of what the
	// narrator asked for.
	maxDeltaPerTurn = 2
)

func clampStat(v int) int {
	if v < statMin {
		return statMin
	}
	if v > statMax {
		return statMax
	}
	return v
}

// ApplyDelta applies a proposed stat change with the viscosity rule and
// reports whether the change landed.
//
// The raw delta is clamped to ±2 first. A positive delta against a value
// already at 6 or above, or a negative delta against a value at 4 or below,
// lands with probability 0.5; a value of exactly 5 always moves freely. The
// result is clamped to [0,10]. Unknown keys are ignored.
func (s *GameState) ApplyDelta(key string, rawDelta int, rng *rand.Rand) bool {
	current, ok := s.Stats[key]
	if !ok {
		return false
	}

	delta := rawDelta
	if delta > maxDeltaPerTurn {
		delta = maxDeltaPerTurn
	}
	if delta < -maxDeltaPerTurn {
		delta = -maxDeltaPerTurn
	}
	if delta == 0 {
		return false
	}

	if (delta > 0 && current >= 6) || (delta < 0 && current <= 4) {
		if rng.Float64() >= 0.5 {
			return false
		}
	}

	s.Stats[key] = clampStat(current + delta)
	return true
}

// ChoicesCount is how many action options the narrator is asked for.
func (s *GameState) ChoicesCount() int {
	if s.Difficulty == DifficultyHardcore {
		return 3
	}
	return 4
}

// StatTier renders the qualitative tier line for one stat value, used to tell
// the narrator how the attribute colors the hero's life. The ladder is
// symmetric around the norm of 5.
func StatTier(key string, val int) string {
	info, ok := StatsInfo[key]
	if !ok {
		return ""
	}

	var status, impact string
	switch val {
	case 0:
		status, impact = "GAME OVER (0/10)", "Total collapse: "+info.Low
	case 1:
		status, impact = "TRAGEDY (1/10)", "On the brink, catastrophe at any moment: "+info.Low
	case 2:
		status, impact = "OBVIOUS, severe PROBLEMS (2/10)", "Even the hero sees the trouble: "+info.Low
	case 3:
		status, impact = "SIGNIFICANT DEVIATION (3/10)", "The hero calls it normal, the reader sees the problem: "+info.Low
	case 4:
		status, impact = "MILD DEVIATION (4/10)", "Not a tragedy yet: "+info.Low
	case 5:
		status, impact = "NORM (5/10)", "Average level, ordinary life"
	case 6:
		status, impact = "MILD DEVIATION (6/10)", "Adds character, not a tragedy: a light taste of luck — "+info.High
	case 7:
		status, impact = "SIGNIFICANT DEVIATION (7/10)", "The hero calls it a blessing, the reader sees the problem: "+info.High
	case 8:
		status, impact = "OBVIOUS PROBLEMS (8/10)", "Even the hero sees the excess: "+info.High
	case 9:
		status, impact = "TRAGEDY (9/10)", "On the edge of catastrophe, ruin at any moment: "+info.High
	default:
		status, impact = "GAME OVER (10/10)", "Total collapse from excess: "+info.High
	}

	return fmt.Sprintf("- **%s**: %s — %s", info.Name, status, impact)
}

// ViscosityBand names how resistant a stat at val should be to change this
// turn, in four symmetric bands around the norm.
func ViscosityBand(val int) string {
	switch dist := val - statNorm; {
	case dist >= -1 && dist <= 1:
		return "changes easily"
	case dist == -2 || dist == 2:
		return "harder to change"
	case dist == -3 || dist == 3:
		return "very viscous, prefers not to change"
	default:
		return "almost never changes"
	}
}

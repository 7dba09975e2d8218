package models

import (
	"math/rand/v2"
	"testing"
)

func testState(stats map[string]int) *GameState {
	s := NewGameState(Settings{
		Gender:       "male",
		LocationType: "capital",
		City:         "moscow",
		Pace:         PaceSeason,
		Difficulty:   DifficultyNormal,
		StartAge:     7,
	}, nil)
	for k, v := range stats {
		s.Stats[k] = v
	}
	return s
}

func TestApplyDeltaStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for start := 0; start <= 10; start++ {
		for delta := -5; delta <= 5; delta++ {
			// Repeat so the gate fires both ways at least once.
			for i := 0; i < 20; i++ {
				s := testState(map[string]int{"mind": start})
				s.ApplyDelta("mind", delta, rng)
				got := s.Stats["mind"]
				if got < 0 || got > 10 {
					t.Fatalf("start=%d delta=%d: value %d out of range", start, delta, got)
				}
			}
		}
	}
}

func TestApplyDeltaClampsToTwo(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	s := testState(map[string]int{"body": 5})
	if !s.ApplyDelta("body", 7, rng) {
		t.Fatal("delta from the norm should always land")
	}
	if got := s.Stats["body"]; got != 7 {
		t.Errorf("expected +7 clamped to +2, got value %d", got)
	}

	s = testState(map[string]int{"body": 5})
	if !s.ApplyDelta("body", -9, rng) {
		t.Fatal("delta from the norm should always land")
	}
	if got := s.Stats["body"]; got != 3 {
		t.Errorf("expected -9 clamped to -2, got value %d", got)
	}
}

func TestApplyDeltaFreeBand(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	// Moving toward or across the norm never hits the gate.
	cases := []struct {
		start, delta, want int
	}{
		{5, 1, 6},
		{5, -1, 4},
		{4, 1, 5},  // positive against a low value: free
		{6, -1, 5}, // negative against a high value: free
		{0, 2, 2},
		{10, -2, 8},
	}
	for _, c := range cases {
		for i := 0; i < 50; i++ {
			s := testState(map[string]int{"health": c.start})
			if !s.ApplyDelta("health", c.delta, rng) {
				t.Fatalf("start=%d delta=%d: free move was gated", c.start, c.delta)
			}
			if got := s.Stats["health"]; got != c.want {
				t.Fatalf("start=%d delta=%d: got %d, want %d", c.start, c.delta, got, c.want)
			}
		}
	}
}

func TestApplyDeltaGateFrequency(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	const trials = 2000
	landed := 0
	for i := 0; i < trials; i++ {
		s := testState(map[string]int{"wealth": 8})
		if s.ApplyDelta("wealth", 1, rng) {
			landed++
		}
	}
	ratio := float64(landed) / trials
	if ratio < 0.4 || ratio > 0.6 {
		t.Errorf("gated move landed %.3f of the time, want about 0.5", ratio)
	}

	landed = 0
	for i := 0; i < trials; i++ {
		s := testState(map[string]int{"wealth": 2})
		if s.ApplyDelta("wealth", -1, rng) {
			landed++
		}
	}
	ratio = float64(landed) / trials
	if ratio < 0.4 || ratio > 0.6 {
		t.Errorf("gated negative move landed %.3f of the time, want about 0.5", ratio)
	}
}

func TestApplyDeltaIgnoresBadInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	s := testState(nil)
	if s.ApplyDelta("charisma", 2, rng) {
		t.Error("unknown key should be ignored")
	}
	if s.ApplyDelta("mind", 0, rng) {
		t.Error("zero delta should be a no-op")
	}
	if got := s.Stats["mind"]; got != 5 {
		t.Errorf("no-op changed value to %d", got)
	}
}

func TestChoicesCount(t *testing.T) {
	normal := testState(nil)
	if got := normal.ChoicesCount(); got != 4 {
		t.Errorf("normal difficulty: got %d choices, want 4", got)
	}
	hard := testState(nil)
	hard.Difficulty = DifficultyHardcore
	if got := hard.ChoicesCount(); got != 3 {
		t.Errorf("hardcore difficulty: got %d choices, want 3", got)
	}
}

func TestViscosityBands(t *testing.T) {
	cases := []struct {
		val  int
		want string
	}{
		{5, "changes easily"},
		{4, "changes easily"},
		{6, "changes easily"},
		{3, "harder to change"},
		{7, "harder to change"},
		{2, "very viscous, prefers not to change"},
		{8, "very viscous, prefers not to change"},
		{0, "almost never changes"},
		{1, "almost never changes"},
		{9, "almost never changes"},
		{10, "almost never changes"},
	}
	for _, c := range cases {
		if got := ViscosityBand(c.val); got != c.want {
			t.Errorf("ViscosityBand(%d) = %q, want %q", c.val, got, c.want)
		}
	}
}

func TestStatTierCoversAllValues(t *testing.T) {
	for v := 0; v <= 10; v++ {
		line := StatTier("mind", v)
		if line == "" {
			t.Errorf("empty tier line for value %d", v)
		}
	}
	if StatTier("charisma", 5) != "" {
		t.Error("unknown key should render empty")
	}
}

package models

import "testing"

func TestPeekMatchesCommit(t *testing.T) {
	for _, pace := range []Pace{PaceSeason, PaceYear} {
		s := NewGameState(Settings{Pace: pace, Difficulty: DifficultyNormal, StartAge: 7}, nil)
		for step := 0; step < 16; step++ {
			peekSeason, peekYear := s.PeekNext()
			s.CommitAdvance()
			if s.SeasonIdx != peekSeason || s.Year != peekYear {
				t.Fatalf("pace=%s step=%d: peek (%d,%d) != commit (%d,%d)",
					pace, step, peekSeason, peekYear, s.SeasonIdx, s.Year)
			}
		}
	}
}

func TestSeasonPaceWrap(t *testing.T) {
	s := NewGameState(Settings{Pace: PaceSeason, Difficulty: DifficultyNormal, StartAge: 7}, nil)
	if s.DateLabel() != "Winter 1993" {
		t.Fatalf("unexpected start date %q", s.DateLabel())
	}

	labels := []string{"Spring 1993", "Summer 1993", "Autumn 1993", "Winter 1994"}
	for i, want := range labels {
		s.CommitAdvance()
		if got := s.DateLabel(); got != want {
			t.Errorf("step %d: got %q, want %q", i+1, got, want)
		}
	}
	if s.Age != 8 {
		t.Errorf("age after one full year: got %d, want 8", s.Age)
	}
}

func TestYearPaceRegressesSeason(t *testing.T) {
	// A year-paced turn covers about nine months: the year advances but the
	// season label steps back one slot.
	cases := []struct {
		startIdx   int
		wantIdx    int
		wantSeason string
	}{
		{0, 3, "Autumn"},
		{1, 0, "Winter"},
		{2, 1, "Spring"},
		{3, 2, "Summer"},
	}
	for _, c := range cases {
		s := NewGameState(Settings{Pace: PaceYear, Difficulty: DifficultyNormal, StartAge: 10}, nil)
		s.SeasonIdx = c.startIdx
		s.CommitAdvance()
		if s.SeasonIdx != c.wantIdx {
			t.Errorf("start idx %d: got idx %d, want %d", c.startIdx, s.SeasonIdx, c.wantIdx)
		}
		if Seasons[s.SeasonIdx] != c.wantSeason {
			t.Errorf("start idx %d: got season %q, want %q", c.startIdx, Seasons[s.SeasonIdx], c.wantSeason)
		}
		if s.Year != 1994 {
			t.Errorf("start idx %d: year %d, want 1994", c.startIdx, s.Year)
		}
		if s.Age != 11 {
			t.Errorf("start idx %d: age %d, want 11", c.startIdx, s.Age)
		}
	}
}

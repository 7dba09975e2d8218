package models

import "fmt"

// Seasons in narrative order; a new game starts in winter.
var Seasons = []string{"Winter", "Spring", "Summer", "Autumn"}

// PeekNext previews the (seasonIdx, year) pair the next turn will land on
// without mutating state. Under season pace the season advances by one,
// wrapping into the next year. Under year pace the year always advances and
// the season label steps back one slot — each year-paced turn spans roughly
// nine months, so the story resumes one season earlier in the following year.
// That asymmetry is deliberate; CommitAdvance must match it exactly.
func (s *GameState) PeekNext() (seasonIdx, year int) {
	if s.Pace == PaceYear {
		return (s.SeasonIdx + 3) % 4, s.Year + 1
	}
	next := s.SeasonIdx + 1
	if next > 3 {
		return 0, s.Year + 1
	}
	return next, s.Year
}

// CommitAdvance moves the clock using the same transition as PeekNext and
// increments age whenever the year rolls over.
func (s *GameState) CommitAdvance() {
	if s.Pace == PaceYear {
		s.Year++
		s.Age++
		s.SeasonIdx = (s.SeasonIdx + 3) % 4
		return
	}
	s.SeasonIdx++
	if s.SeasonIdx > 3 {
		s.SeasonIdx = 0
		s.Year++
		s.Age++
	}
}

// DateLabel renders the current in-world date, e.g. "Winter 1993". Used both
// for display and as the timestamp on entity description updates.
func (s *GameState) DateLabel() string {
	return fmt.Sprintf("%s %d", Seasons[s.SeasonIdx], s.Year)
}

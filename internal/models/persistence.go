package models

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveDir is where save files live. Overridable from config.
var SaveDir = ".epokha"

const stateFile = "state.yaml"

// ErrNoSave reports that no save file exists for the given slot.
var ErrNoSave = errors.New("no saved game")

// Save writes the whole state as one YAML document. The write is a full
// overwrite performed only after a turn has fully committed.
func (s *GameState) Save(name string) error {
	dir := filepath.Join(SaveDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, stateFile), data, 0644)
}

// LoadState reads a saved game, tolerating older or partial serializations:
// any missing field is filled with its documented default rather than
// failing.
func LoadState(name string) (*GameState, error) {
	data, err := os.ReadFile(filepath.Join(SaveDir, name, stateFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSave
		}
		return nil, err
	}

	var s GameState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	// A second pass over the raw document distinguishes "absent" from
	// zero-valued for the fields whose default is not the zero value.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	s.applyDefaults(raw)
	return &s, nil
}

// HasSave reports whether a resumable save exists.
func HasSave(name string) bool {
	_, err := os.Stat(filepath.Join(SaveDir, name, stateFile))
	return err == nil
}

// DeleteSave removes a save slot entirely (player reset).
func DeleteSave(name string) error {
	return os.RemoveAll(filepath.Join(SaveDir, name))
}

func (s *GameState) applyDefaults(raw map[string]any) {
	if s.Difficulty == "" {
		s.Difficulty = DifficultyNormal
	}
	if s.Pace == "" {
		s.Pace = PaceSeason
	}
	if s.LocationType == "" {
		s.LocationType = "capital"
		s.Region = "central"
		s.City = "moscow"
	}
	if s.Year == 0 {
		s.Year = startYear
	}

	if s.Stats == nil {
		s.Stats = defaultStats()
	} else {
		for _, k := range StatKeys {
			if _, ok := s.Stats[k]; !ok {
				s.Stats[k] = statNorm
			}
			s.Stats[k] = clampStat(s.Stats[k])
		}
	}

	// miracleAvailable defaults to "normal difficulty, not yet used" but only
	// when the save predates the field; false in a current save means spent.
	if _, present := raw["miracleAvailable"]; !present {
		s.MiracleAvailable = s.Difficulty == DifficultyNormal && !s.MiracleUsed
	}
}

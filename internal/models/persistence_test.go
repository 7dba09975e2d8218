package models

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempSaveDir(t *testing.T) {
	t.Helper()
	old := SaveDir
	SaveDir = t.TempDir()
	t.Cleanup(func() { SaveDir = old })
}

func TestSaveLoadRoundtrip(t *testing.T) {
	useTempSaveDir(t)

	s := NewGameState(Settings{
		Gender:       "female",
		LocationType: "village",
		Region:       "siberia",
		Pace:         PaceYear,
		Difficulty:   DifficultyHardcore,
		StartAge:     9,
	}, &StartRoll{
		NPCs:     []Entity{{Name: "Babushka", Desc: "Raises the hero alone."}},
		Items:    []StartItem{{Name: "Felt boots", Desc: "Warm.", Stat: "health", Mod: 1}},
		StatMods: map[string]int{"health": 1},
	})
	s.History = []Turn{{Role: "user", Content: "My choice: run outside."}}
	s.TurnCount = 3
	s.LifeSummary = "A quiet childhood so far."

	if err := s.Save("slot1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !HasSave("slot1") {
		t.Fatal("HasSave should report true after Save")
	}

	got, err := LoadState("slot1")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if got.Gender != "female" || got.Region != "siberia" || got.Pace != PaceYear {
		t.Errorf("settings did not survive the roundtrip: %+v", got)
	}
	if got.Stats["health"] != 6 {
		t.Errorf("modified stat: got %d, want 6", got.Stats["health"])
	}
	if len(got.History) != 1 || got.History[0].Content != s.History[0].Content {
		t.Errorf("history did not survive: %+v", got.History)
	}
	if got.MiracleAvailable {
		t.Error("hardcore save should not carry a miracle")
	}

	if err := DeleteSave("slot1"); err != nil {
		t.Fatalf("DeleteSave: %v", err)
	}
	if HasSave("slot1") {
		t.Error("HasSave should report false after DeleteSave")
	}
	if _, err := LoadState("slot1"); err != ErrNoSave {
		t.Errorf("LoadState after delete: got %v, want ErrNoSave", err)
	}
}

func TestLoadStateFillsDefaults(t *testing.T) {
	useTempSaveDir(t)

	// An old save: no pace, no difficulty, a partial stats block, and no
	// miracle bookkeeping at all.
	raw := `gender: male
year: 0
stats:
  mind: 30
  wealth: 2
turnCount: 5
`
	dir := filepath.Join(SaveDir, "old")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state.yaml"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadState("old")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if s.Difficulty != DifficultyNormal || s.Pace != PaceSeason {
		t.Errorf("mode defaults: got %s/%s", s.Difficulty, s.Pace)
	}
	if s.LocationType != "capital" || s.City != "moscow" {
		t.Errorf("location defaults: got %s/%s", s.LocationType, s.City)
	}
	if s.Year != 1993 {
		t.Errorf("year default: got %d", s.Year)
	}
	if s.Stats["mind"] != 10 {
		t.Errorf("out-of-range stat should clamp to 10, got %d", s.Stats["mind"])
	}
	if s.Stats["wealth"] != 2 {
		t.Errorf("present stat should survive, got %d", s.Stats["wealth"])
	}
	for _, k := range StatKeys {
		if _, ok := s.Stats[k]; !ok {
			t.Errorf("missing stat %q was not defaulted", k)
		}
	}
	if !s.MiracleAvailable {
		t.Error("absent miracleAvailable on a normal save should default to true")
	}
}

func TestLoadStateMiracleFalseIsRespected(t *testing.T) {
	useTempSaveDir(t)

	raw := `difficulty: normal
miracleAvailable: false
miracleUsed: true
`
	dir := filepath.Join(SaveDir, "spent")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state.yaml"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadState("spent")
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if s.MiracleAvailable {
		t.Error("explicit false must not be resurrected by defaulting")
	}
}

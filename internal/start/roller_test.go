package start

import (
	"math/rand/v2"
	"testing"

	"github.com/epokha-game/epokha/internal/models"
)

func testSettings(locationType, gender string) models.Settings {
	return models.Settings{
		Gender:       gender,
		LocationType: locationType,
		Region:       "central",
		City:         "moscow",
		Pace:         models.PaceSeason,
		Difficulty:   models.DifficultyNormal,
		StartAge:     7,
	}
}

func TestRollIsDeterministicForSeed(t *testing.T) {
	a := Roll(rand.New(rand.NewPCG(42, 42)), testSettings("town", "male"))
	b := Roll(rand.New(rand.NewPCG(42, 42)), testSettings("town", "male"))

	if len(a.NPCs) != len(b.NPCs) || len(a.Items) != len(b.Items) {
		t.Fatalf("same seed produced different shapes: %d/%d vs %d/%d",
			len(a.NPCs), len(a.Items), len(b.NPCs), len(b.Items))
	}
	for i := range a.NPCs {
		if a.NPCs[i] != b.NPCs[i] {
			t.Errorf("NPC %d differs: %+v vs %+v", i, a.NPCs[i], b.NPCs[i])
		}
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, a.Items[i], b.Items[i])
		}
	}
}

func TestRollAlwaysHasCaretakerAndItem(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for _, loc := range []string{"village", "town", "capital"} {
		for i := 0; i < 200; i++ {
			roll := Roll(rng, testSettings(loc, "female"))
			if len(roll.NPCs) == 0 {
				t.Fatalf("%s: rolled a hero with nobody around", loc)
			}
			if len(roll.Items) == 0 {
				t.Fatalf("%s: rolled a hero with empty pockets", loc)
			}
		}
	}
}

func TestRollNoDuplicates(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	for i := 0; i < 200; i++ {
		roll := Roll(rng, testSettings("capital", "male"))

		descs := make(map[string]bool)
		for _, n := range roll.NPCs {
			if descs[n.Desc] {
				t.Fatalf("duplicate NPC rolled: %+v", n)
			}
			descs[n.Desc] = true
		}

		names := make(map[string]bool)
		for _, it := range roll.Items {
			if names[it.Name] {
				t.Fatalf("duplicate item rolled: %+v", it)
			}
			names[it.Name] = true
		}
	}
}

func TestRollStatModsMatchItems(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 100; i++ {
		roll := Roll(rng, testSettings("village", "male"))

		want := make(map[string]int)
		for _, it := range roll.Items {
			want[it.Stat] += it.Mod
		}
		if len(want) != len(roll.StatMods) {
			t.Fatalf("stat mods keys: %v vs items %v", roll.StatMods, want)
		}
		for k, v := range want {
			if roll.StatMods[k] != v {
				t.Errorf("stat %q: mods say %d, items sum to %d", k, roll.StatMods[k], v)
			}
		}
	}
}

func TestRollUnknownLocationFallsBack(t *testing.T) {
	roll := Roll(rand.New(rand.NewPCG(1, 1)), testSettings("the moon", "male"))
	if len(roll.NPCs) == 0 || len(roll.Items) == 0 {
		t.Error("unknown location type should fall back to the town pools")
	}
}

package models

import (
	"strings"
	"testing"
)

func TestAddOrIgnoreFirstWriteWins(t *testing.T) {
	var l EntityList
	l.AddOrIgnore("Sanya", "Best friend from the next stairwell.")
	l.AddOrIgnore("Sanya", "A completely different Sanya.")

	if len(l) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(l))
	}
	if l[0].Desc != "Best friend from the next stairwell." {
		t.Errorf("duplicate add overwrote the description: %q", l[0].Desc)
	}
}

func TestAddOrIgnoreDefaults(t *testing.T) {
	var l EntityList
	l.AddOrIgnore("", "ghost")
	if len(l) != 0 {
		t.Error("empty name should be dropped")
	}
	l.AddOrIgnore("Bicycle", "")
	if len(l) != 1 || l[0].Desc != "No description." {
		t.Errorf("empty description should be defaulted, got %+v", l)
	}
}

func TestRemoveSilentOnUnknown(t *testing.T) {
	l := EntityList{{Name: "Mama", Desc: "Nearby."}}
	l.Remove("Papa")
	if len(l) != 1 {
		t.Error("removing an unknown name should be a no-op")
	}
	l.Remove("Mama")
	if len(l) != 0 {
		t.Error("known name should be removed")
	}
}

func TestAppendUpdatePreservesPrior(t *testing.T) {
	l := EntityList{{Name: "Mama", Desc: "Nearby, as always."}}
	l.AppendUpdate("Mama", "Took a second job at the market.", "Spring 1994")

	got := l[0].Desc
	if !strings.HasPrefix(got, "Nearby, as always.") {
		t.Errorf("prior description was not preserved as a prefix: %q", got)
	}
	if !strings.Contains(got, "\n\n*(Spring 1994)* Took a second job at the market.") {
		t.Errorf("update fragment missing or mislabelled: %q", got)
	}

	// Unknown name and empty fragment are silently dropped.
	l.AppendUpdate("Papa", "returned", "Spring 1994")
	l.AppendUpdate("Mama", "", "Spring 1994")
	if l[0].Desc != got {
		t.Error("silent-drop cases mutated the description")
	}
}

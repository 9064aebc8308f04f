package roster

import "testing"

func TestDefaultRoster(t *testing.T) {
	r := Default()
	if r.Len() != len(DefaultGeneral()) {
		t.Fatalf("expected %d names, got %d (duplicates in DefaultGeneral?)", len(DefaultGeneral()), r.Len())
	}
	for _, name := range []string{"Mission Maker", "Hero of the Sky", "Survivor"} {
		if !r.IsGeneral(name) {
			t.Errorf("expected %q to be a general award", name)
		}
	}
}

func TestIsGeneralExactMatch(t *testing.T) {
	r := Default()
	for _, name := range []string{"survivor", "Survivor ", "Without a Miss", "Shoulder to Shoulder", ""} {
		if r.IsGeneral(name) {
			t.Errorf("did not expect %q to be a general award", name)
		}
	}
}

func TestNewCustom(t *testing.T) {
	r := New([]string{"Shadow Strike"})
	if !r.IsGeneral("Shadow Strike") {
		t.Fatal("expected custom name to match")
	}
	if r.IsGeneral("Survivor") {
		t.Fatal("custom roster should not include defaults")
	}
}

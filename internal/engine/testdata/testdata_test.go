package testdata

import "testing"

func TestLoadCases(t *testing.T) {
	cases, err := LoadCases()
	if err != nil {
		t.Fatalf("LoadCases() error: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("expected at least one case")
	}
	for _, c := range cases {
		if c.Report == "" {
			t.Errorf("%s: empty report", c.File)
		}
		if c.Description == "" {
			t.Errorf("%s: missing description", c.File)
		}
		if !c.Structural && len(c.Entries) == 0 {
			t.Errorf("%s: non-structural case has no expected entries", c.File)
		}
	}
}

func TestReportUnknown(t *testing.T) {
	if _, err := Report("nope.txt"); err == nil {
		t.Fatal("expected error for unknown report")
	}
}

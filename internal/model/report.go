package model

// TimedEntry is a timestamp-prefixed report line: a main entry (Name is a
// vehicle) or an award entry (Name is the award).
type TimedEntry struct {
	Seconds int    // m:ss converted to seconds
	Name    string // vehicle or award name
	Value   int64  // SL amount
	Line    string // source line, for diagnostics
}

// Sections is the structured view of a battle report produced by the section
// extractor and consumed by the reconciliation stages.
type Sections struct {
	Victory bool // first word of the report is "Victory"
	Booster bool // "Active boosters SL:" line present

	TimePlayed   []string     // vehicle names, in report order
	ActivityTime []Entry      // per-vehicle activity SL
	Main         []TimedEntry // timestamped lines before the Awards heading
	Awards       []TimedEntry // lines of the Awards block; nil when absent
	HasAwards    bool

	OtherAwards    int64 // sum of "Other awards" lines
	DeclaredBonus  int64 // "Reward for ..." amount
	DeclaredEarned int64 // "Earned:" amount
	PremiumFormula bool  // a "(PA)N ... = M SL" formula appears
}

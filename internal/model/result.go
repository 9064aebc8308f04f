package model

import "time"

// Result is lionshare's output type: one reconciled battle report.
type Result struct {
	ID       string    `json:"id,omitempty"`
	Source   string    `json:"source,omitempty"` // report path or "stdin"
	ParsedAt time.Time `json:"parsed_at"`
	Victory  bool      `json:"victory"`
	Booster  bool      `json:"booster"`
	Entries  []Entry   `json:"entries"`
	Total    int64     `json:"total"`
	Declared int64     `json:"declared_earned"`
	Error    string    `json:"error,omitempty"` // validation diagnostic
}

// Row is one line of the persisted running ledger.
type Row struct {
	Name    string
	Value   int64
	Flagged bool // third CSV column, carried through unchanged
}

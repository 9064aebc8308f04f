package lionshare

// Entry is one vehicle's share of a battle, in the order the vehicle first
// appears in the report.
type Entry struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Result is a reconciled battle report.
type Result struct {
	Victory  bool    `json:"victory"`
	Booster  bool    `json:"booster"`
	Entries  []Entry `json:"entries"`
	Total    int64   `json:"total"`           // sum of Entries
	Declared int64   `json:"declared_earned"` // the report's "Earned:" amount
}

// Get returns the value for a vehicle and whether it has an entry.
func (r Result) Get(name string) (int64, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}

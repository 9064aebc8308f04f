package model

// Entry is one vehicle's amount in a ledger, in ledger order.
type Entry struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Ledger maps vehicle names to Silver Lion amounts, keeping first-seen order.
// The zero value is not usable; create one with NewLedger.
type Ledger struct {
	names  []string
	values map[string]int64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{values: make(map[string]int64)}
}

// Seed ensures name has an entry, creating it with 0 if absent.
func (l *Ledger) Seed(name string) {
	if _, ok := l.values[name]; ok {
		return
	}
	l.names = append(l.names, name)
	l.values[name] = 0
}

// Add adds v to name's entry, creating the entry if it is new.
func (l *Ledger) Add(name string, v int64) {
	l.Seed(name)
	l.values[name] += v
}

// Get returns the amount for name and whether the entry exists.
func (l *Ledger) Get(name string) (int64, bool) {
	v, ok := l.values[name]
	return v, ok
}

// Names returns vehicle names in insertion order.
func (l *Ledger) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.names)
}

// Total returns the sum of all entries.
func (l *Ledger) Total() int64 {
	var sum int64
	for _, name := range l.names {
		sum += l.values[name]
	}
	return sum
}

// Entries returns a snapshot of the ledger in insertion order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.names))
	for i, name := range l.names {
		out[i] = Entry{Name: name, Value: l.values[name]}
	}
	return out
}

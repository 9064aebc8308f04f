// Package roster answers whether an award is a general (session-wide) award.
package roster

// Roster is an immutable set of general award names. Safe for concurrent use.
type Roster struct {
	names map[string]struct{}
}

// New creates a Roster from names. Matching is exact and case-sensitive.
func New(names []string) *Roster {
	r := &Roster{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		r.names[n] = struct{}{}
	}
	return r
}

// Default returns a Roster built from DefaultGeneral.
func Default() *Roster {
	return New(DefaultGeneral())
}

// IsGeneral reports whether award is never attributed to a vehicle.
func (r *Roster) IsGeneral(award string) bool {
	_, ok := r.names[award]
	return ok
}

// Len returns the number of names in the roster.
func (r *Roster) Len() int {
	return len(r.names)
}

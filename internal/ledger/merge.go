package ledger

import (
	"fmt"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Unknown decides what happens to a result entry with no matching row.
type Unknown string

const (
	UnknownAdd    Unknown = "add"
	UnknownIgnore Unknown = "ignore"
)

// ParseUnknown validates a policy name.
func ParseUnknown(s string) (Unknown, error) {
	switch Unknown(s) {
	case UnknownAdd, UnknownIgnore:
		return Unknown(s), nil
	}
	return "", fmt.Errorf("ledger: unknown-vehicle policy must be add or ignore, got %q", s)
}

// Policy controls Apply.
type Policy struct {
	Unknown Unknown
	// Aliases redirects a result name to an existing row name. Checked only
	// when the result name has no row of its own.
	Aliases map[string]string
}

// MergeReport lists what Apply did, by vehicle name.
type MergeReport struct {
	Updated []string `json:"updated,omitempty"`
	Added   []string `json:"added,omitempty"`
	Ignored []string `json:"ignored,omitempty"`
}

// Apply adds every non-zero entry to the row of the same name and returns the
// new rows. The input slice is not modified.
func Apply(rows []model.Row, entries []model.Entry, p Policy) ([]model.Row, MergeReport) {
	out := make([]model.Row, len(rows))
	copy(out, rows)
	index := make(map[string]int, len(out))
	for i, r := range out {
		if _, dup := index[r.Name]; !dup {
			index[r.Name] = i
		}
	}

	var rep MergeReport
	for _, e := range entries {
		if e.Value == 0 {
			continue
		}
		i, ok := index[e.Name]
		if !ok {
			if alias, has := p.Aliases[e.Name]; has {
				i, ok = index[alias]
			}
		}
		switch {
		case ok:
			out[i].Value += e.Value
			rep.Updated = append(rep.Updated, out[i].Name)
		case p.Unknown == UnknownIgnore:
			rep.Ignored = append(rep.Ignored, e.Name)
		default:
			index[e.Name] = len(out)
			out = append(out, model.Row{Name: e.Name, Value: e.Value})
			rep.Added = append(rep.Added, e.Name)
		}
	}
	return out, rep
}

// Adjust adds delta to the named row.
func Adjust(rows []model.Row, name string, delta int64) ([]model.Row, error) {
	for i := range rows {
		if rows[i].Name == name {
			out := make([]model.Row, len(rows))
			copy(out, rows)
			out[i].Value += delta
			return out, nil
		}
	}
	return nil, fmt.Errorf("ledger: no entry named %q", name)
}

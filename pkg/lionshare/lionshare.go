package lionshare

import (
	"github.com/crimson-sun/lionshare/internal/engine"
	"github.com/crimson-sun/lionshare/internal/engine/roster"
)

// ErrStructure is returned, wrapped, when the text is not a recognisable
// battle report. Test with errors.Is.
var ErrStructure = engine.ErrStructure

// ValidationError reports that the reconstruction disagrees with a total the
// report declares. It is returned together with a usable Result.
type ValidationError = engine.ValidationError

// Mismatch is one disagreeing total inside a ValidationError.
type Mismatch = engine.Mismatch

// Lionshare reconciles battle reports. Safe for concurrent use.
type Lionshare struct {
	engine *engine.Engine
}

// New creates a Lionshare instance.
func New(opts ...Option) *Lionshare {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	names := append(append([]string(nil), o.general...), o.extra...)
	return &Lionshare{
		engine: engine.New(
			engine.WithRoster(roster.New(names)),
			engine.WithLogger(o.logger),
		),
	}
}

// Reconcile splits one report. On a *ValidationError the Result is a
// best-effort reconstruction; on ErrStructure it is empty.
func (l *Lionshare) Reconcile(report string) (Result, error) {
	out, err := l.engine.Process(report)
	if out == nil {
		return Result{}, err
	}
	entries := out.Ledger.Entries()
	res := Result{
		Victory:  out.Sections.Victory,
		Booster:  out.Sections.Booster,
		Entries:  make([]Entry, len(entries)),
		Total:    out.Ledger.Total(),
		Declared: out.Sections.DeclaredEarned,
	}
	for i, e := range entries {
		res.Entries[i] = Entry{Name: e.Name, Value: e.Value}
	}
	return res, err
}

// Reconcile is a one-shot convenience for New(opts...).Reconcile(report).
func Reconcile(report string, opts ...Option) (Result, error) {
	return New(opts...).Reconcile(report)
}

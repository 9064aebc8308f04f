package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/crimson-sun/lionshare/internal/engine/attribution"
	"github.com/crimson-sun/lionshare/internal/engine/bonus"
	"github.com/crimson-sun/lionshare/internal/engine/distribute"
	"github.com/crimson-sun/lionshare/internal/engine/roster"
	"github.com/crimson-sun/lionshare/internal/engine/sections"
	"github.com/crimson-sun/lionshare/internal/engine/windows"
	"github.com/crimson-sun/lionshare/internal/model"
)

// ErrStructure is returned, wrapped, when a report cannot be matched by the
// expected grammar. No ledger accompanies it.
var ErrStructure = sections.ErrStructure

// Stage names a validation checkpoint.
type Stage string

const (
	StageBonus  Stage = "additional reward"
	StageEarned Stage = "earned total"
)

// Mismatch is a computed total that disagrees with the report's declared one.
type Mismatch struct {
	Stage    Stage
	Computed int64
	Declared int64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Validation of %s failed %d != %d", m.Stage, m.Computed, m.Declared)
}

// ValidationError reports one or both mismatches. The ledger returned with it
// is a best-effort reconstruction.
type ValidationError struct {
	Mismatches []Mismatch
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return strings.Join(parts, "|")
}

// Route records where one award went.
type Route struct {
	Award  model.TimedEntry
	Target attribution.Target
}

// Outcome carries the ledger together with every stage's intermediate result.
type Outcome struct {
	Sections *model.Sections
	Ledger   *model.Ledger
	Bonus    bonus.Result
	Routes   []Route
	Pool     distribute.Result
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoster replaces the default general award roster.
func WithRoster(r *roster.Roster) Option {
	return func(e *Engine) { e.roster = r }
}

// WithLogger sets the logger used for debug tracing. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine orchestrates the extract, seed, bonus, attribute and distribute
// pipeline. It holds no per-report state and is safe for concurrent use.
type Engine struct {
	roster *roster.Roster
	logger *slog.Logger
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		roster: roster.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile returns the per-vehicle ledger for a battle report. On a
// validation mismatch both the ledger and a *ValidationError are returned; on
// a structural failure the ledger is nil.
func (e *Engine) Reconcile(text string) (*model.Ledger, error) {
	out, err := e.Process(text)
	if out == nil {
		return nil, err
	}
	return out.Ledger, err
}

// Process is Reconcile with the intermediate stage results attached.
func (e *Engine) Process(text string) (*Outcome, error) {
	s, err := sections.Extract(text)
	if err != nil {
		return nil, err
	}

	l := model.NewLedger()
	tr := windows.New()
	for _, name := range s.TimePlayed {
		l.Seed(name)
		tr.Seed(name)
	}
	for _, a := range s.ActivityTime {
		l.Add(a.Name, a.Value)
	}
	for _, m := range s.Main {
		l.Add(m.Name, m.Value)
		tr.Observe(m.Name, m.Seconds)
	}

	out := &Outcome{Sections: s, Ledger: l}
	var mismatches []Mismatch

	out.Bonus = bonus.Apply(l, s.Victory, s.Booster)
	e.logger.Debug("bonus applied",
		"multiplier", out.Bonus.Multiplier.String(),
		"rounding", out.Bonus.Rounding.String(),
		"total", out.Bonus.Total,
		"declared", s.DeclaredBonus)
	if out.Bonus.Total != s.DeclaredBonus {
		mismatches = append(mismatches, Mismatch{Stage: StageBonus, Computed: out.Bonus.Total, Declared: s.DeclaredBonus})
	}

	pool := s.OtherAwards
	att := attribution.New(e.roster)
	for _, a := range s.Awards {
		target := att.Route(tr, a.Name, a.Seconds)
		out.Routes = append(out.Routes, Route{Award: a, Target: target})
		if target.Pooled {
			pool += a.Value
		} else {
			l.Add(target.Vehicle, a.Value)
		}
		e.logger.Debug("award routed",
			"award", a.Name, "seconds", a.Seconds, "value", a.Value,
			"vehicle", target.Vehicle, "reason", string(target.Reason))
	}

	out.Pool = distribute.Pool(l, pool)
	total := l.Total()
	e.logger.Debug("general pool distributed",
		"pool", pool, "remaining", out.Pool.Remaining,
		"total", total, "declared", s.DeclaredEarned)
	if total != s.DeclaredEarned {
		mismatches = append(mismatches, Mismatch{Stage: StageEarned, Computed: total, Declared: s.DeclaredEarned})
	}

	if len(mismatches) > 0 {
		return out, &ValidationError{Mismatches: mismatches}
	}
	return out, nil
}

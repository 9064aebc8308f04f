// Package attribution decides which vehicle, if any, an award belongs to.
package attribution

import (
	"github.com/crimson-sun/lionshare/internal/engine/roster"
	"github.com/crimson-sun/lionshare/internal/engine/windows"
)

// Reason explains how a Target was chosen.
type Reason string

const (
	General      Reason = "general"      // roster award, always pooled
	Contained    Reason = "contained"    // timestamp inside a vehicle's window
	Nearest      Reason = "nearest"      // nearest-window heuristic
	Unattributed Reason = "unattributed" // no vehicle has a window
)

// Target is the outcome of routing one award.
type Target struct {
	Vehicle string // empty when Pooled
	Pooled  bool   // value goes to the general award pool
	Reason  Reason
}

// Attributor routes awards to vehicles or to the general pool.
type Attributor struct {
	roster *roster.Roster
}

// New creates an Attributor backed by the given roster.
func New(r *roster.Roster) *Attributor {
	return &Attributor{roster: r}
}

// Route decides where an award named award at second sec goes.
func (a *Attributor) Route(tr *windows.Tracker, award string, sec int) Target {
	if a.roster.IsGeneral(award) {
		return Target{Pooled: true, Reason: General}
	}
	vehicle, reason := Resolve(tr.Spans(), sec)
	if vehicle == "" {
		return Target{Pooled: true, Reason: reason}
	}
	return Target{Vehicle: vehicle, Reason: reason}
}

// Resolve matches sec against spans in order. The first span containing sec
// wins. Otherwise a running candidate (initially the first span) is replaced
// by a span that starts after sec with a start closer to sec than the
// candidate's start, or by a span that ends before sec with an end closer to
// sec than the candidate's end, provided the candidate does not itself start
// after sec. With no spans the result is empty.
func Resolve(spans []windows.Span, sec int) (string, Reason) {
	if len(spans) == 0 {
		return "", Unattributed
	}
	best := spans[0]
	for _, s := range spans {
		if s.Window.Contains(sec) {
			return s.Name, Contained
		}
	}
	for _, s := range spans[1:] {
		w, bw := s.Window, best.Window
		switch {
		case w.Min > sec && dist(w.Min, sec) < dist(bw.Min, sec):
			best = s
		case w.Max < sec && dist(w.Max, sec) < dist(bw.Max, sec) && bw.Min <= sec:
			best = s
		}
	}
	return best.Name, Nearest
}

func dist(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

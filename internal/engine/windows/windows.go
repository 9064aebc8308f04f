// Package windows tracks, per vehicle, the span of main-entry timestamps.
package windows

// Window is an inclusive [Min, Max] range of seconds.
type Window struct {
	Min int
	Max int
}

// Contains reports whether t lies inside the window, bounds included.
func (w Window) Contains(t int) bool {
	return w.Min <= t && t <= w.Max
}

// Tracker holds one optional window per vehicle, in first-seen order.
// A vehicle can be unknown (no key), known without data (seeded from the
// time-played list), or observed (a window exists).
type Tracker struct {
	order   []string
	windows map[string]*Window
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{windows: make(map[string]*Window)}
}

// Seed registers a vehicle with no data. It is a no-op for known vehicles.
func (t *Tracker) Seed(name string) {
	if _, ok := t.windows[name]; ok {
		return
	}
	t.order = append(t.order, name)
	t.windows[name] = nil
}

// Observe widens name's window to include sec. The first observation sets
// both bounds to sec.
func (t *Tracker) Observe(name string, sec int) {
	t.Seed(name)
	w := t.windows[name]
	if w == nil {
		t.windows[name] = &Window{Min: sec, Max: sec}
		return
	}
	if sec < w.Min {
		w.Min = sec
	}
	if sec > w.Max {
		w.Max = sec
	}
}

// Lookup returns name's window. known is false for vehicles never seeded or
// observed; observed is false while no timestamp has been seen.
func (t *Tracker) Lookup(name string) (w Window, known, observed bool) {
	p, known := t.windows[name]
	if p == nil {
		return Window{}, known, false
	}
	return *p, true, true
}

// Span is a vehicle with its observed window.
type Span struct {
	Name   string
	Window Window
}

// Spans returns every vehicle with an observed window, in first-seen order.
func (t *Tracker) Spans() []Span {
	var out []Span
	for _, name := range t.order {
		if w := t.windows[name]; w != nil {
			out = append(out, Span{Name: name, Window: *w})
		}
	}
	return out
}

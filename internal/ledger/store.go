// Package ledger persists the running per-vehicle Silver Lion ledger and
// folds reconciliation results into it.
package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Store loads and saves the whole ledger. Row order is preserved.
type Store interface {
	Load(ctx context.Context) ([]model.Row, error)
	Save(ctx context.Context, rows []model.Row) error
	Close() error
}

// Constructor opens a Store at path.
type Constructor func(path string) (Store, error)

var registry = map[string]Constructor{}

// Register adds a backend constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Open opens the store for the named backend.
func Open(backend, path string) (Store, error) {
	ctor, ok := registry[backend]
	if !ok {
		return nil, fmt.Errorf("unknown ledger backend: %s", backend)
	}
	s, err := ctor(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s %s: %w", backend, path, err)
	}
	return s, nil
}

// Backends returns the names of all registered backends, sorted.
func Backends() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

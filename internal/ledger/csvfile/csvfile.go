// Package csvfile stores the ledger as a headerless three-column CSV file:
// name, value, and a True/False flag.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/crimson-sun/lionshare/internal/ledger"
	"github.com/crimson-sun/lionshare/internal/model"
)

func init() {
	ledger.Register("csv", func(path string) (ledger.Store, error) {
		return New(path), nil
	})
}

// Store is a CSV-file ledger.Store.
type Store struct {
	path string
}

// New returns a Store for path. The file is not touched until Load or Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads every row. A missing file is an empty ledger.
func (s *Store) Load(_ context.Context) ([]model.Row, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csvfile: load: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfile: load %s: %w", s.path, err)
	}

	rows := make([]model.Row, 0, len(records))
	for i, rec := range records {
		v, err := strconv.ParseInt(rec[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csvfile: load %s: line %d: %w", s.path, i+1, err)
		}
		rows = append(rows, model.Row{Name: rec[0], Value: v, Flagged: rec[2] == "True"})
	}
	return rows, nil
}

// Save replaces the file. It writes to a temporary file in the same
// directory and renames it over the old one.
func (s *Store) Save(_ context.Context, rows []model.Row) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("csvfile: save: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	for _, r := range rows {
		flag := "False"
		if r.Flagged {
			flag = "True"
		}
		if err := w.Write([]string{r.Name, strconv.FormatInt(r.Value, 10), flag}); err != nil {
			tmp.Close()
			return fmt.Errorf("csvfile: save: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("csvfile: save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csvfile: save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("csvfile: save: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *Store) Close() error { return nil }

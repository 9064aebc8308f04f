// Package fixture archives battle reports worth turning into regression
// tests: the raw input next to the ledger it produced.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Expected is the contents of expected.json. Its fields match the embedded
// regression corpus so an archived fixture can be copied into it as is.
type Expected struct {
	File        string        `json:"file"`
	Description string        `json:"description,omitempty"`
	Entries     []model.Entry `json:"entries,omitempty"`
	Error       string        `json:"error,omitempty"`
	Structural  bool          `json:"structural,omitempty"`
}

// Worth reports whether a report should be archived: it failed to reconcile,
// had a booster active, or contained a premium account formula.
func Worth(s *model.Sections, err error) bool {
	if err != nil || s == nil {
		return true
	}
	return s.Booster || s.PremiumFormula
}

// Archive writes fixtures under a directory, one subdirectory per report.
type Archive struct {
	dir string
}

// New returns an Archive rooted at dir.
func New(dir string) *Archive {
	return &Archive{dir: dir}
}

// Save writes <dir>/<id>/input.txt and <dir>/<id>/expected.json and returns
// id. A new UUID is generated when id is empty.
func (a *Archive) Save(id, input string, exp Expected) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	dir := filepath.Join(a.dir, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("fixture: save: %w", err)
	}

	if exp.File == "" {
		exp.File = "input.txt"
	}
	if err := os.WriteFile(filepath.Join(dir, "input.txt"), []byte(input), 0o644); err != nil {
		return "", fmt.Errorf("fixture: save input: %w", err)
	}
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("fixture: marshal: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "expected.json"), append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("fixture: save expected: %w", err)
	}
	return id, nil
}

// Load reads a previously saved fixture.
func (a *Archive) Load(id string) (string, Expected, error) {
	dir := filepath.Join(a.dir, id)
	input, err := os.ReadFile(filepath.Join(dir, "input.txt"))
	if err != nil {
		return "", Expected{}, fmt.Errorf("fixture: load: %w", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "expected.json"))
	if err != nil {
		return "", Expected{}, fmt.Errorf("fixture: load: %w", err)
	}
	var exp Expected
	if err := json.Unmarshal(data, &exp); err != nil {
		return "", Expected{}, fmt.Errorf("fixture: parse expected.json: %w", err)
	}
	return string(input), exp, nil
}

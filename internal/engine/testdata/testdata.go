package testdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/crimson-sun/lionshare/internal/model"
)

//go:embed reports/*.txt
var reports embed.FS

//go:embed expected.json
var expectedJSON []byte

// Case is a battle report with its expected reconciliation.
type Case struct {
	File        string        `json:"file"`
	Description string        `json:"description"`
	Entries     []model.Entry `json:"entries"`
	Error       string        `json:"error"`
	Structural  bool          `json:"structural"`
	Report      string        `json:"-"`
}

// LoadCases parses expected.json and attaches each report's text.
func LoadCases() ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(expectedJSON, &cases); err != nil {
		return nil, fmt.Errorf("parse expected.json: %w", err)
	}
	for i := range cases {
		data, err := reports.ReadFile(path.Join("reports", cases[i].File))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", cases[i].File, err)
		}
		cases[i].Report = string(data)
	}
	return cases, nil
}

// Report returns the text of one embedded report.
func Report(file string) (string, error) {
	data, err := reports.ReadFile(path.Join("reports", file))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

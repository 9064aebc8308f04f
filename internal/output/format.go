package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Format selects how a result is rendered for humans or machines.
type Format string

const (
	JSON Format = "json"
	Text Format = "text"
)

// ParseFormat maps a config string to a Format. Unknown strings map to JSON.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(Text)) {
		return Text
	}
	return JSON
}

// WriteText renders r as a two-column table followed by the total
// and, when present, the validation diagnostic.
func WriteText(w io.Writer, r model.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	outcome := "Defeat"
	if r.Victory {
		outcome = "Victory"
	}
	if r.Booster {
		outcome += ", booster"
	}
	fmt.Fprintf(tw, "%s\t\t\n", outcome)
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%s\t%d SL\t\n", e.Name, e.Value)
	}
	fmt.Fprintf(tw, "Total\t%d SL\t\n", r.Total)
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.Error != "" {
		for _, msg := range strings.Split(r.Error, "|") {
			if _, err := fmt.Fprintf(w, "warning: %s\n", msg); err != nil {
				return err
			}
		}
	}
	return nil
}

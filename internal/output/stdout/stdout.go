package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/lionshare/internal/model"
	"github.com/crimson-sun/lionshare/internal/output"
)

// Output writes results to stdout as JSON or as a text table.
type Output struct {
	w      io.Writer
	enc    *json.Encoder
	format output.Format
}

// New creates a stdout Output. pretty indents JSON and is ignored for text.
func New(format output.Format, pretty bool) *Output {
	return NewWriter(os.Stdout, format, pretty)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, format output.Format, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{w: w, enc: enc, format: format}
}

func (o *Output) Write(_ context.Context, r model.Result) error {
	if o.format == output.Text {
		if err := output.WriteText(o.w, r); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if err := o.enc.Encode(r); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/lionshare/internal/engine"
	"github.com/crimson-sun/lionshare/internal/fixture"
	"github.com/crimson-sun/lionshare/internal/ledger"
	"github.com/crimson-sun/lionshare/internal/model"
	"github.com/crimson-sun/lionshare/internal/output"
)

var (
	// ErrStrict is returned when a strict run hits a validation mismatch.
	// Outputs are still written; the ledger store is left untouched.
	ErrStrict = errors.New("validation failed in strict mode, ledger not updated")

	// ErrNoStore is returned when Apply is requested without a store.
	ErrNoStore = errors.New("no ledger store configured")
)

// Reconciler turns report text into a reconciled outcome.
type Reconciler interface {
	Process(text string) (*engine.Outcome, error)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithStore sets the ledger store results are applied to.
func WithStore(s ledger.Store) Option {
	return func(p *Pipeline) { p.store = s }
}

// WithArchive enables fixture archiving.
func WithArchive(a *fixture.Archive) Option {
	return func(p *Pipeline) { p.archive = a }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithClock overrides the time source used for Result.ParsedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// Pipeline connects the reconciliation engine, outputs, fixture archive and
// ledger store.
type Pipeline struct {
	engine  Reconciler
	out     output.Output
	store   ledger.Store
	archive *fixture.Archive
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Pipeline from the given components.
func New(r Reconciler, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine: r,
		out:    out,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Request is one report to process.
type Request struct {
	Source string // path or "stdin", recorded on the result
	Text   string
	Apply  bool // fold the result into the ledger store
	Strict bool // refuse to apply when validation failed
	Policy ledger.Policy
}

// Report is what a run produced.
type Report struct {
	Result  model.Result
	Merge   *ledger.MergeReport // nil unless the ledger was updated
	Fixture string              // archived fixture id, if any
}

// Run reconciles one report, writes the result to every output, archives it
// when it is worth keeping, and optionally applies it to the ledger.
// A structural failure returns a nil Report.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Report, error) {
	id := uuid.NewString()
	out, err := p.engine.Process(req.Text)

	var verr *engine.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		p.logger.Warn("report did not reconcile", "source", req.Source, "error", err)
	default:
		p.logger.Error("report not recognised", "source", req.Source, "error", err)
		p.saveFixture(id, req.Text, fixture.Expected{Structural: true, Description: err.Error()}, nil, err)
		return nil, fmt.Errorf("pipeline: reconcile %s: %w", req.Source, err)
	}

	res := model.Result{
		ID:       id,
		Source:   req.Source,
		ParsedAt: p.now().UTC(),
		Victory:  out.Sections.Victory,
		Booster:  out.Sections.Booster,
		Entries:  out.Ledger.Entries(),
		Total:    out.Ledger.Total(),
		Declared: out.Sections.DeclaredEarned,
	}
	if verr != nil {
		res.Error = verr.Error()
	}
	rep := &Report{Result: res}
	rep.Fixture = p.saveFixture(id, req.Text, fixture.Expected{Entries: res.Entries, Error: res.Error}, out.Sections, err)

	if err := p.out.Write(ctx, res); err != nil {
		return rep, fmt.Errorf("pipeline output: %w", err)
	}

	if !req.Apply {
		return rep, nil
	}
	if verr != nil && req.Strict {
		return rep, fmt.Errorf("pipeline: %w: %w", ErrStrict, verr)
	}
	if p.store == nil {
		return rep, fmt.Errorf("pipeline: %w", ErrNoStore)
	}

	rows, err := p.store.Load(ctx)
	if err != nil {
		return rep, fmt.Errorf("pipeline: load ledger: %w", err)
	}
	rows, merge := ledger.Apply(rows, res.Entries, req.Policy)
	if err := p.store.Save(ctx, rows); err != nil {
		return rep, fmt.Errorf("pipeline: save ledger: %w", err)
	}
	rep.Merge = &merge
	p.logger.Info("ledger updated",
		"updated", len(merge.Updated), "added", len(merge.Added), "ignored", len(merge.Ignored))
	for _, name := range merge.Ignored {
		p.logger.Warn("vehicle not in ledger, ignored", "vehicle", name)
	}
	return rep, nil
}

// saveFixture archives the report when an archive is configured and the
// report qualifies. Failures are logged, not returned.
func (p *Pipeline) saveFixture(id, text string, exp fixture.Expected, s *model.Sections, err error) string {
	if p.archive == nil || !fixture.Worth(s, err) {
		return ""
	}
	saved, ferr := p.archive.Save(id, text, exp)
	if ferr != nil {
		p.logger.Warn("fixture not archived", "error", ferr)
		return ""
	}
	p.logger.Debug("fixture archived", "id", saved)
	return saved
}

// Close shuts down the output and the store.
func (p *Pipeline) Close() error {
	var errs []error
	if err := p.out.Close(); err != nil {
		errs = append(errs, err)
	}
	if p.store != nil {
		if err := p.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReadReport reads a report from path, or from stdin when path is "-".
func ReadReport(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("pipeline: read report: %w", err)
	}
	return string(data), nil
}

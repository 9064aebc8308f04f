package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/lionshare/internal/engine"
	"github.com/crimson-sun/lionshare/internal/fixture"
	"github.com/crimson-sun/lionshare/internal/ledger"
	"github.com/crimson-sun/lionshare/internal/output"
	"github.com/crimson-sun/lionshare/internal/output/file"
	"github.com/crimson-sun/lionshare/internal/output/multi"
	"github.com/crimson-sun/lionshare/internal/output/stdout"
	"github.com/crimson-sun/lionshare/internal/output/webhook"
	"github.com/crimson-sun/lionshare/internal/pipeline"
)

type parseFlags struct {
	apply    bool
	strict   bool
	unknown  string
	aliases  map[string]string
	format   string
	pretty   bool
	journal  string
	fixtures string
	webhook  string
}

func newParseCmd(a *app) *cobra.Command {
	f := &parseFlags{}
	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Reconcile one battle report",
		Long: `Reads a battle report (default: the configured input path, "-" for stdin),
prints the per-vehicle Silver Lion split, and with --apply adds it to the ledger.`,
		Example: `  lionshare parse
  lionshare parse report.txt --apply --unknown ignore
  pbpaste | lionshare parse - --format text`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.apply, "apply", false, "add the result to the ledger")
	fl.BoolVar(&f.strict, "strict", false, "do not apply when a declared total disagrees")
	fl.StringVar(&f.unknown, "unknown", "", "vehicles missing from the ledger: add or ignore (env LIONSHARE_UNKNOWN)")
	fl.StringToStringVar(&f.aliases, "alias", nil, "credit a report name to an existing ledger entry, REPORT=LEDGER")
	fl.StringVar(&f.format, "format", "", "output format: json or text (env LIONSHARE_OUTPUT_FORMAT)")
	fl.BoolVar(&f.pretty, "pretty", false, "indent JSON output (env LIONSHARE_OUTPUT_PRETTY)")
	fl.StringVar(&f.journal, "journal", "", "append results to this NDJSON file (env LIONSHARE_JOURNAL_PATH)")
	fl.StringVar(&f.fixtures, "fixtures", "", "archive notable reports under this directory (env LIONSHARE_FIXTURE_DIR)")
	fl.StringVar(&f.webhook, "webhook", "", "POST each result to this URL (env LIONSHARE_WEBHOOK_URL)")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string, f *parseFlags) error {
	cfg := a.cfg
	fl := cmd.Flags()
	if fl.Changed("unknown") {
		cfg.Ledger.Unknown = f.unknown
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("pretty") {
		cfg.Output.Pretty = f.pretty
	}
	if fl.Changed("journal") {
		cfg.Journal.Path = f.journal
	}
	if fl.Changed("fixtures") {
		cfg.FixtureDir = f.fixtures
	}
	if fl.Changed("webhook") {
		cfg.WebhookURL = f.webhook
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags:\n%w", err)
	}
	unknown, err := ledger.ParseUnknown(cfg.Ledger.Unknown)
	if err != nil {
		return err
	}

	path := cfg.InputPath
	if len(args) == 1 {
		path = args[0]
	}
	source := path
	if path == "-" {
		source = "stdin"
	}
	text, err := pipeline.ReadReport(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	outs := []output.Output{stdout.NewWriter(cmd.OutOrStdout(), output.ParseFormat(cfg.Output.Format), cfg.Output.Pretty)}
	if cfg.Journal.Path != "" {
		j, err := file.New(cfg.Journal.Path, file.WithMaxSize(cfg.Journal.MaxSize))
		if err != nil {
			return err
		}
		outs = append(outs, j)
	}
	if cfg.WebhookURL != "" {
		outs = append(outs, webhook.New(cfg.WebhookURL))
	}
	out := multi.New(outs...)

	opts := []pipeline.Option{pipeline.WithLogger(a.logger)}
	if cfg.FixtureDir != "" {
		opts = append(opts, pipeline.WithArchive(fixture.New(cfg.FixtureDir)))
	}
	if f.apply {
		store, err := a.openStore()
		if err != nil {
			out.Close()
			return err
		}
		opts = append(opts, pipeline.WithStore(store))
	}

	p := pipeline.New(engine.New(engine.WithLogger(a.logger)), out, opts...)
	defer p.Close()

	rep, err := p.Run(cmd.Context(), pipeline.Request{
		Source: source,
		Text:   text,
		Apply:  f.apply,
		Strict: f.strict,
		Policy: ledger.Policy{Unknown: unknown, Aliases: f.aliases},
	})
	if err != nil {
		return err
	}
	if rep.Merge != nil {
		for _, name := range rep.Merge.Added {
			fmt.Fprintf(cmd.ErrOrStderr(), "added new ledger entry %q\n", name)
		}
	}
	return nil
}

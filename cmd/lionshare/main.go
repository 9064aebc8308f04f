package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/lionshare/internal/config"
	"github.com/crimson-sun/lionshare/internal/ledger"
	"github.com/crimson-sun/lionshare/internal/logging"

	// Register ledger backends.
	_ "github.com/crimson-sun/lionshare/internal/ledger/csvfile"
	_ "github.com/crimson-sun/lionshare/internal/ledger/sqlite"
)

// app carries process-wide state shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    config.Config
	logger *slog.Logger

	logLevel      string
	ledgerBackend string
	ledgerPath    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lionshare: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lionshare",
		Short:         "Split War Thunder battle rewards per vehicle",
		Long:          "lionshare reconstructs how many Silver Lions each vehicle earned in a battle from the end-of-session report, and keeps a running per-vehicle ledger.",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (env LIONSHARE_LOG_LEVEL)")
	pf.StringVar(&a.ledgerBackend, "ledger-backend", "", "ledger backend: "+fmt.Sprint(ledger.Backends())+" (env LIONSHARE_LEDGER_BACKEND)")
	pf.StringVar(&a.ledgerPath, "ledger", "", "ledger file (env LIONSHARE_LEDGER_PATH)")

	root.AddCommand(newParseCmd(a), newLedgerCmd(a))

	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, c.CommandPath())
	})
	return root
}

// setup loads configuration, applies persistent flag overrides and installs
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("ledger-backend") {
		cfg.Ledger.Backend = a.ledgerBackend
	}
	if flags.Changed("ledger") {
		cfg.Ledger.Path = a.ledgerPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}
	a.cfg = cfg
	a.logger = logging.Init(a.stderr, cfg.Output.Format == "json", logging.ParseLevel(cfg.LogLevel))
	return nil
}

// openStore opens the configured ledger store.
func (a *app) openStore() (ledger.Store, error) {
	return ledger.Open(a.cfg.Ledger.Backend, a.cfg.Ledger.Path)
}

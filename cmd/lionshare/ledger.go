package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/lionshare/internal/ledger"
)

func newLedgerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect or correct the running ledger",
	}
	cmd.AddCommand(newLedgerListCmd(a), newLedgerAdjustCmd(a))
	return cmd
}

func newLedgerListCmd(a *app) *cobra.Command {
	var flagged bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every ledger entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "ledger is empty")
				return nil
			}
			w := cmd.OutOrStdout()
			for _, r := range rows {
				if flagged && !r.Flagged {
					continue
				}
				fmt.Fprintf(w, "%s: %d\n", r.Name, r.Value)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flagged, "flagged", false, "only entries whose flag column is set")
	return cmd
}

func newLedgerAdjustCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust NAME EXPR",
		Short: "Add an integer expression to one entry",
		Long: `Adds EXPR to the entry NAME and saves the ledger. EXPR is integer
arithmetic with + and -, e.g. "1200-35". Put "--" before a negative EXPR.`,
		Example: `  lionshare ledger adjust "Tiger II (H)" 1200-35
  lionshare ledger adjust Ka-50 -- -50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			delta, err := ledger.ParseAdjustment(args[1])
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			rows, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			updated, err := ledger.Adjust(rows, name, delta)
			if err != nil {
				return err
			}
			if err := store.Save(cmd.Context(), updated); err != nil {
				return err
			}
			for i := range rows {
				if rows[i].Name == name {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d\n", name, rows[i].Value, updated[i].Value)
					break
				}
			}
			return nil
		},
	}
}

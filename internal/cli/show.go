package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/report"
	"github.com/me/schedsim/internal/store"
)

func newShowCmd() *cobra.Command {
	var flagDB string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Render a saved run's report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewSQLiteStore(flagDB, logger)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			if err := st.Migrate(cmd.Context()); err != nil {
				return err
			}

			run, err := st.GetRun(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get run: %w", err)
			}
			if run == nil {
				return fmt.Errorf("run %s not found", args[0])
			}

			report.NewWriter(cmd.OutOrStdout()).WriteRun(run)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDB, "db", defaultDBPath(), "Database path (or SCHEDSIM_DB env)")
	return cmd
}

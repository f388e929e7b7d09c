package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/store"
)

func newListCmd() *cobra.Command {
	var flagDB string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved simulation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewSQLiteStore(flagDB, logger)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			if err := st.Migrate(cmd.Context()); err != nil {
				return err
			}

			runs, err := st.ListRuns(cmd.Context())
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No saved runs.")
				return nil
			}

			fmt.Fprintf(out, "%-42s  %-20s  %5s  %4s  %s\n", "RUN ID", "NAME", "PROCS", "DISP", "CREATED")
			for _, r := range runs {
				fmt.Fprintf(out, "%-42s  %-20s  %5d  %4d  %s\n",
					r.ID, r.Name, r.ProcessCount, r.DispatchCost,
					r.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDB, "db", defaultDBPath(), "Database path (or SCHEDSIM_DB env)")
	return cmd
}

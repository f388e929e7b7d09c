package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/parser"
	"github.com/me/schedsim/internal/report"
	"github.com/me/schedsim/internal/sim"
	"github.com/me/schedsim/internal/store"
	"github.com/me/schedsim/pkg/model"
)

func newRunCmd() *cobra.Command {
	var (
		flagAlgorithm string
		flagSave      bool
		flagDB        string
	)

	cmd := &cobra.Command{
		Use:   "run <input-file>",
		Short: "Simulate a workload file and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workload, err := parser.New(logger).ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			simulator := sim.New(sim.DefaultConfig(), logger)

			algos := model.Algorithms()
			if flagAlgorithm != "" {
				algo := model.Algorithm(flagAlgorithm)
				if !algo.Valid() {
					return fmt.Errorf("unknown algorithm %q (want fcfs, rr, srr, or fb)", flagAlgorithm)
				}
				algos = []model.Algorithm{algo}
			}

			results := make(map[model.Algorithm]model.RunResult, len(algos))
			for _, algo := range algos {
				res, err := simulator.Run(*workload, algo)
				if err != nil {
					return err
				}
				results[algo] = res
			}

			run := &model.Run{
				ID:        "run_" + uuid.New().String(),
				Name:      filepath.Base(args[0]),
				Workload:  *workload,
				Results:   results,
				CreatedAt: time.Now().UTC(),
			}

			report.NewWriter(cmd.OutOrStdout()).WriteRun(run)

			if flagSave {
				if err := saveRun(cmd.Context(), flagDB, run); err != nil {
					return fmt.Errorf("save run: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as %s\n", run.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagAlgorithm, "algorithm", "", "Run a single algorithm (fcfs, rr, srr, fb)")
	cmd.Flags().BoolVar(&flagSave, "save", false, "Persist the run to the local database")
	cmd.Flags().StringVar(&flagDB, "db", defaultDBPath(), "Database path (or SCHEDSIM_DB env)")
	return cmd
}

func saveRun(ctx context.Context, dbPath string, run *model.Run) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	st, err := store.NewSQLiteStore(dbPath, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return err
	}
	return st.CreateRun(ctx, run)
}

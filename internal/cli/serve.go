package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/schedsim/internal/config"
	"github.com/me/schedsim/internal/server"
	"github.com/me/schedsim/internal/store"
)

func newServeCmd() *cobra.Command {
	var (
		flagAddr   string
		flagDB     string
		flagConfig string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the schedsim HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultServerConfig()
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// Flags override the config file.
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = flagAddr
			}
			if cmd.Flags().Changed("db") || cfg.DBPath == "" {
				cfg.DBPath = flagDB
			}

			if dir := filepath.Dir(cfg.DBPath); dir != "." && cfg.DBPath != ":memory:" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create %s: %w", dir, err)
				}
			}

			st, err := store.NewSQLiteStore(cfg.DBPath, logger)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			if err := st.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			logger.Info("database ready", "path", cfg.DBPath)

			srv := server.New(cfg, st, logger)
			httpSrv := &http.Server{
				Addr:    cfg.Addr,
				Handler: srv.Handler(),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", cfg.Addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpSrv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&flagDB, "db", defaultDBPath(), "Database path (or SCHEDSIM_DB env)")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML server config file")
	return cmd
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ersonp/scamguard/internal/infrastructure/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API for the browser UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				cfg := deps.Config.Server
				if addr != "" {
					cfg.Addr = addr
				}

				srv := &http.Server{
					Addr:              cfg.Addr,
					Handler:           httpapi.NewRouter(deps.ScanHandler, deps.HistoryHandler, cfg, deps.Logger),
					ReadHeaderTimeout: readHeaderTimeout,
				}
				return serve(cmd.Context(), srv, func(msg string) { fmt.Fprintln(cmd.OutOrStdout(), msg) })
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, notify func(string)) error {
	errCh := make(chan error, 1)
	go func() {
		notify("Listening on http://" + srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

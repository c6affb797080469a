package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/luquetti/mis18/internal/server"
	"github.com/urfave/cli/v3"
)

// Serve starts the party JSON API server and blocks until it stops.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureStore(); err != nil {
		return err
	}

	if host := cmd.String("host"); host != "" {
		r.config.Server.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		r.config.Server.Port = int(port)
	}

	srv := server.New(r.config, r.engine, r.store.Bus(), r.logger)

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	r.logger.Info("serving party API", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

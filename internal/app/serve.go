package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// serve runs the HTTP server until the context is canceled or the listener
// fails.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, name string) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server listening", "service", name, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

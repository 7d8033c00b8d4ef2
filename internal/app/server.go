package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

// serve runs srv on ln until ctx is canceled, then shuts it down gracefully
// within timeout. A listener failure is returned as is.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server gracefully", slog.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server shutdown complete")
	return nil
}

type reloader interface {
	Reload(ctx context.Context) domain.LexiconStats
}

// watchReload reloads the lexicon each time a signal arrives on sig, until
// ctx is canceled.
func watchReload(ctx context.Context, sig <-chan os.Signal, r reloader, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-sig:
			logger.InfoContext(ctx, "reload signal received", slog.String("signal", s.String()))
			r.Reload(ctx)
		}
	}
}

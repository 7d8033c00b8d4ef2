package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/rbmt-backend/internal/config"
	"github.com/heartmarshall/rbmt-backend/internal/lexicon"
	"github.com/heartmarshall/rbmt-backend/internal/service/translation"
	"github.com/heartmarshall/rbmt-backend/internal/transport/middleware"
	"github.com/heartmarshall/rbmt-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, reads the
// lexicon, and serves the REST API until ctx is canceled. SIGHUP reloads
// the lexicon when enabled in config.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("lexicon_path", cfg.Lexicon.Path),
	)

	store := lexicon.Load(cfg.Lexicon.Path,
		lexicon.WithColumns(cfg.Lexicon.SourceColumn, cfg.Lexicon.TargetColumn),
		lexicon.WithDelimiter(cfg.Lexicon.Comma),
		lexicon.WithLogger(logger),
	)
	svc := translation.NewService(logger, store, cfg.Translate)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := newRouter(routerDeps{
		logger:    logger,
		cors:      cfg.CORS,
		rateLimit: cfg.RateLimit,
		limiter:   limiter,
		health:    rest.NewHealthHandler(svc, BuildVersion()),
		translate: rest.NewTranslateHandler(svc, logger),
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return serve(gctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
	})

	if cfg.Lexicon.ReloadOnSIGHUP {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		g.Go(func() error {
			watchReload(gctx, hup, svc, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// Package app assembles the process: container, router, HTTP server and
// graceful shutdown.
package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/delipedidos/api/internal/config"
	"github.com/delipedidos/api/internal/logger"
	"github.com/delipedidos/api/internal/provider"
	"github.com/delipedidos/api/internal/router"

	"go.uber.org/zap"
)

// Options are the process start options.
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}

// Run starts the API server and blocks until a stop signal or a serve error.
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	container := provider.NewContainer(opts.Config)
	engine := router.SetupRouter(opts.Config, container)
	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	service := NewHTTPService(addr, engine)

	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signalContext(ctx, opts.Signals)
		defer cancel()
	}

	opts.Logger.Infow("app_start", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- service.Start(ctx)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer stopCancel()
	if err := service.Stop(stopCtx); err != nil {
		opts.Logger.Errorw("service_stop_failed", "service", service.Name(), "error", err)
	}
	opts.Logger.Infow("app_stop")

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/app"
	"github.com/d1d2-apps/ewallet-backend/internal/app/deps"
	"github.com/d1d2-apps/ewallet-backend/internal/app/services"
	dl "github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"

	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)

	httpServer := app.InitHttpServer(deps, services)
	errCh := make(chan error, 1)
	go start(httpServer, deps, errCh)

	stopCh, closeCh := createChannel()
	defer closeCh()

	var err error
	select {
	case <-stopCh:
	case err = <-errCh:
	}
	shutdown(ctx, httpServer, deps, shutdownDeps)
	return err
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		signal.Stop(stopCh)
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps, errCh chan<- error) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		deps.Logger.Error(context.Background(), "HTTP server failed.", dl.Entry("err", err))
		errCh <- err
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error(ctx, "Could not shut down HTTP server.", dl.Entry("err", err))
	}

	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
	shutDownDeps()
}

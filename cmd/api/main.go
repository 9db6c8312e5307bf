package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kotaicode/gpx-analyzer/internal/analysis"
	"github.com/kotaicode/gpx-analyzer/internal/config"
	"github.com/kotaicode/gpx-analyzer/internal/overpass"
	"github.com/kotaicode/gpx-analyzer/internal/server"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() config.Config
	roads      func(config.Config) analysis.RoadSource
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, analysis.RoadSource, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		roads: func(cfg config.Config) analysis.RoadSource {
			return overpass.NewClient(cfg.OverpassURL, cfg.OverpassTimeout())
		},
		notify: signal.Notify,
		run:    Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()
	roads := deps.roads(cfg)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, roads, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, roads analysis.RoadSource, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, roads)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return shutdownFn(srv.App, shutdownCtx)
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timeanchor/timeanchor/internal/api"
	"github.com/timeanchor/timeanchor/internal/config"
	"github.com/timeanchor/timeanchor/internal/resolve"
)

// ServeCmd runs the HTTP dev server exposing the strict and best-effort
// resolution endpoints.
type ServeCmd struct {
	Port int `help:"Port to listen on. Defaults to the configured port." short:"p"`
}

func (cmd *ServeCmd) Run(globals *Globals) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	port := cfg.Port
	if cmd.Port != 0 {
		port = cmd.Port
	}

	resolver := resolve.New()
	resolver.FallbackZone = cfg.TimeZone

	app := api.NewApp(api.NewHandler(resolver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(fmt.Sprintf(":%d", port))
	}()

	log.Printf("timeanchor listening on :%d (zone %s)", port, cfg.TimeZone)

	select {
	case err := <-errCh:
		if err != nil {
			return newCLIError(ExitServerError, "server_error", err.Error())
		}
	case <-ctx.Done():
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return newCLIError(ExitServerError, "server_error", err.Error())
		}
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/web"
)

var (
	flagHTTPAddr   string
	flagVerbose    bool
	flagIdleExpiry time.Duration
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve match-3 boards over HTTP",
	Long: `Start an HTTP JSON API. Every game is an independent board with a
UUID; cascades settle inside each swap. Games without a change or an
open event stream for --idle-expiry are dropped.

Routes:
  POST   /games              {rows, columns, colors, strict, seed} -> board
  GET    /games/{id}         board
  POST   /games/{id}/swap    {first, second} -> {accepted, score, cleared, noMoves, board}
  POST   /games/{id}/new     redeal
  GET    /games/{id}/hint    {found, first, second}
  GET    /games/{id}/events  server-sent events, one per change
  DELETE /games/{id}

Examples:
  match3 api
  match3 api --http 127.0.0.1:9000 --verbose`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address")
	apiCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every request")
	apiCmd.Flags().DurationVar(&flagIdleExpiry, "idle-expiry", time.Hour, "Drop games idle for this long (0 keeps them)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	svc := web.NewService(loadConfig(), logger)
	srv := &http.Server{
		Addr:              flagHTTPAddr,
		Handler:           web.NewServer(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Shutdown waits for handlers; event streams only end when closed.
	srv.RegisterOnShutdown(svc.Close)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagIdleExpiry > 0 {
		go svc.RunExpiry(ctx, min(flagIdleExpiry, time.Minute), flagIdleExpiry)
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP API", "address", flagHTTPAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down...", "games", svc.Len())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

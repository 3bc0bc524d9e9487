package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tacal100/transit"
	"github.com/tacal100/transit/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the routing API over HTTP",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func serve(cmd *cobra.Command, args []string) error {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg := server.LoadConfig()
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	feed, err := transit.LoadFeed(cfg.DataDir)
	if err != nil {
		return err
	}
	logger.Info("feed loaded",
		"data_dir", cfg.DataDir,
		"stops", len(feed.Stops),
		"trips", len(feed.StopTimes),
		"routes", len(feed.Routes),
	)

	srv := server.New(feed, cfg, logger)
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("listening", "addr", cfg.HTTPAddr)
	return httpServer.ListenAndServe()
}

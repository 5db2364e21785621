package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/colpuxase-art/shasitter-sub000/internal/bot"
	"github.com/colpuxase-art/shasitter-sub000/internal/config"
	"github.com/colpuxase-art/shasitter-sub000/internal/dashboard"
	"github.com/colpuxase-art/shasitter-sub000/internal/logging"
	"github.com/colpuxase-art/shasitter-sub000/internal/store"
	"github.com/colpuxase-art/shasitter-sub000/internal/webapp"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func versionString() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildDate)
}

const maxLogSize = 200 * 1024

func main() {
	configPath := flag.String("config", "shasitter.json", "Path to the JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Config %s not found\n", *configPath)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.StartRotation(ctx, maxLogSize, time.Minute)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	b, err := bot.New(cfg, db)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := b.RegisterCommands(); err != nil {
		slog.Warn("Failed to register commands", "error", err)
	}

	auth := webapp.NewAuthenticator(cfg.BotToken, cfg.AdminIDs)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: dashboard.New(auth, db).Router(cfg.WebAppDir),
	}

	go func() {
		slog.Info("Dashboard listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Dashboard server failed", "error", err)
			stop()
		}
	}()

	slog.Info("Pet sitter bot started", "version", versionString())
	b.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Dashboard shutdown", "error", err)
	}

	slog.Info("Bot stopped")
}

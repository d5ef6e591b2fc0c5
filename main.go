package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/fragmede/hackerstories/internal/api"
	"github.com/fragmede/hackerstories/internal/cache"
	"github.com/fragmede/hackerstories/internal/config"
	"github.com/fragmede/hackerstories/internal/refresh"
	"github.com/fragmede/hackerstories/internal/ui"
)

// Cached searches older than this are deleted on startup.
const pruneAfter = 7 * 24 * time.Hour

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating cache dir: %v\n", err)
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	db, err := cache.Open(cfg.DBPath)
	if err != nil {
		logrus.WithError(err).Error("opening cache")
		fmt.Fprintf(os.Stderr, "Error: opening cache: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	go prune(db)

	client := api.NewClient(cfg)
	app := ui.NewApp(cfg, client, db, cache.NewSearchTerm(db), refresh.New(cfg.RefreshInterval))

	p := tea.NewProgram(app, tea.WithAltScreen())
	app.SetProgram(p)
	if _, err := p.Run(); err != nil {
		logrus.WithError(err).Error("program exited")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends logrus output to cfg.LogPath. The terminal belongs
// to the UI, so nothing is logged to stderr.
func setupLogging(cfg config.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"pages":    cfg.FetchPages,
		"refresh":  cfg.RefreshInterval.String(),
	}).Info("starting")
	return f, nil
}

func prune(db *cache.DB) {
	n, err := db.PruneSearches(pruneAfter)
	if err != nil {
		logrus.WithError(err).Warn("pruning search cache")
		return
	}
	if n > 0 {
		logrus.WithField("count", n).Debug("pruned cached searches")
	}
}

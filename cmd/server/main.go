package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/avmaksimov/psycab/internal/ai"
	"github.com/avmaksimov/psycab/internal/api"
	"github.com/avmaksimov/psycab/internal/config"
	"github.com/avmaksimov/psycab/internal/middleware"
	"github.com/avmaksimov/psycab/internal/services"
	"github.com/avmaksimov/psycab/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Pretty)

	if dir := filepath.Dir(cfg.SQLitePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal().Err(err).Str("dir", dir).Msg("create data directory")
		}
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", cfg.SQLitePath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("open sqlite")
	}
	defer db.Close()

	store, err := storage.NewSQLiteStore(db, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("init storage")
	}

	repo := services.NewRepository(store, logger)
	sessions := services.NewSessionService(repo)
	reports := services.NewReportService(repo)
	exports := services.NewExportService(repo)
	backup := services.NewBackupService(store)
	settings := services.NewSettingsService(store)

	baseURL := cfg.AIBaseURL
	if baseURL == "" {
		baseURL = ai.DefaultBaseURL
	}
	generator := ai.NewClient(baseURL, cfg.AITimeout())
	analyses := services.NewAnalysisService(repo, settings, generator)

	mux := http.NewServeMux()
	router := api.NewRouter(repo, sessions, reports, exports, backup, settings, analyses)
	router.Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	handler := middleware.RequestLogger(logger)(middleware.NoStore(mux))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(pretty bool) zerolog.Logger {
	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

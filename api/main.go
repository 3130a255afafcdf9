package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"stemdex.dev/search/api/adapters/aaa"
	"stemdex.dev/search/api/adapters/rest"
	"stemdex.dev/search/api/adapters/rest/middleware"
	"stemdex.dev/search/api/adapters/search"
	"stemdex.dev/search/api/adapters/update"
	"stemdex.dev/search/api/adapters/words"
	"stemdex.dev/search/api/config"
	"stemdex.dev/search/api/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := mustMakeLogger(cfg.LogLevel)

	log.Info("starting api server")
	log.Debug("debug messages are enabled")

	wordsClient, err := words.NewClient(cfg.WordsAddress, log)
	if err != nil {
		log.Error("cannot init words adapter", "error", err)
		os.Exit(1)
	}

	searchClient, err := search.NewClient(cfg.SearchAddress, log)
	if err != nil {
		log.Error("cannot init search adapter", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := searchClient.Close(); err != nil {
			log.Error("failed to close search client", "error", err)
		}
	}()

	updateClient, err := update.NewClient(cfg.UpdateAddress, log)
	if err != nil {
		log.Error("cannot init update adapter", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := updateClient.Close(); err != nil {
			log.Error("failed to close update client", "error", err)
		}
	}()

	auth, err := aaa.New(cfg.TokenTTL, log)
	if err != nil {
		log.Error("cannot init auth", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /api/words", rest.NewWordsHandler(log, wordsClient))
	mux.Handle("GET /api/search", middleware.Rate(
		middleware.Concurrency(rest.NewSearchHandler(log, searchClient), cfg.SearchConcurrency),
		cfg.SearchRate))
	mux.Handle("GET /api/isearch", middleware.Rate(
		middleware.Concurrency(rest.NewIndexSearchHandler(log, searchClient), cfg.SearchConcurrency),
		cfg.SearchRate))

	// админские ручки - только с валидным токеном
	mux.Handle("POST /api/db/update", middleware.Auth(rest.NewUpdateHandler(log, updateClient), auth))
	mux.Handle("DELETE /api/db", middleware.Auth(rest.NewDropHandler(log, updateClient), auth))
	mux.Handle("GET /api/db/stats", rest.NewUpdateStatsHandler(log, updateClient))
	mux.Handle("GET /api/db/status", rest.NewUpdateStatusHandler(log, updateClient))

	mux.Handle("POST /api/login", rest.NewLoginHandler(log, auth))
	mux.Handle("GET /ping", rest.NewPingHandler(log, map[string]core.Pinger{
		"words":  wordsClient,
		"search": searchClient,
		"update": updateClient,
	}))

	server := &http.Server{
		Addr:              cfg.HTTPServer.Address,
		Handler:           mux,
		ReadTimeout:       cfg.HTTPServer.Timeout,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout,
		WriteTimeout:      cfg.HTTPServer.Timeout,
		IdleTimeout:       2 * cfg.HTTPServer.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down server")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error("erroneous shutdown", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server closed unexpectedly", "error", err)
			return
		}
	}

}

func mustMakeLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "INFO":
		slogLevel = slog.LevelInfo
	case "WARN", "WARNING":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: false,
	}))
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	updatepb "stemdex.dev/search/proto/update"
	"stemdex.dev/search/update/adapters/db"
	"stemdex.dev/search/update/adapters/events"
	"stemdex.dev/search/update/adapters/feed"
	updategrpc "stemdex.dev/search/update/adapters/grpc"
	"stemdex.dev/search/update/adapters/words"
	"stemdex.dev/search/update/config"
	"stemdex.dev/search/update/core"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	log.Info("starting update server")
	log.Debug("debug messages are enabled")

	// схема должна быть готова до подключения сервиса
	if err := migrateUp(cfg.MigrationsDir, cfg.DBAddress); err != nil {
		return fmt.Errorf("failed to migrate db: %v", err)
	}

	// DB
	storage, err := db.New(log, cfg.DBAddress)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %v", err)
	}

	// внешний фид документов
	feedClient, err := feed.NewClient(cfg.FeedURL, cfg.FeedTimeout, log)
	if err != nil {
		return fmt.Errorf("failed to create feed client: %v", err)
	}

	// words
	wordsClient, err := words.NewClient(cfg.WordsAddress, log)
	if err != nil {
		return fmt.Errorf("failed to create words client: %v", err)
	}
	defer func() {
		if err := wordsClient.Close(); err != nil {
			log.Error("failed to close words client", "error", err)
		}
	}()

	// события для поиска
	publisher, err := events.NewNatsPublisher(cfg.NatsAddress, log)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %v", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("failed to close publisher", "error", err)
		}
	}()

	// service
	updateService, err := core.NewService(log, storage, feedClient, wordsClient, cfg.Concurrency, publisher)
	if err != nil {
		return fmt.Errorf("failed to create update service: %v", err)
	}

	// gRPC server
	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %v", err)
	}

	s := grpc.NewServer()
	updatepb.RegisterUpdateServer(s, updategrpc.NewServer(updateService))
	reflection.Register(s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Debug("shutting down update server")
		s.GracefulStop()
	}()

	if err := s.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %v", err)
	}
	return nil
}

func migrateUp(dir, address string) error {
	m, err := migrate.New("file://"+dir, address)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	return slog.New(handler)
}

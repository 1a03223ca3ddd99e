package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/npezzotti/go-social/internal/api"
	"github.com/npezzotti/go-social/internal/config"
	"github.com/npezzotti/go-social/internal/database"
	"github.com/npezzotti/go-social/internal/database/migrations"
	"github.com/npezzotti/go-social/internal/stats"
)

const defaultDSN = "host=localhost user=postgres password=postgres dbname=postgres sslmode=disable"

type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, strings.Split(value, ",")...)
	return nil
}

var (
	addr           string
	dsn            string
	migrate        bool
	allowedOrigins stringSliceFlag
)

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	flag.StringVar(&addr, "addr", "localhost:8080", "server address")
	flag.StringVar(&dsn, "dsn", envOr("SOCIAL_DSN", defaultDSN), "database connection string (env SOCIAL_DSN)")
	flag.BoolVar(&migrate, "migrate", true, "apply database migrations on startup")
	flag.Var(&allowedOrigins, "allowed-origins", "comma-separated list of allowed origins for CORS")
	flag.Parse()

	logger := log.New(os.Stderr, "[go-social] ", log.LstdFlags)

	cfg, err := config.NewConfig(addr, dsn, allowedOrigins, migrate)
	if err != nil {
		logger.Fatal("config:", err)
	}

	repo, err := database.NewPgSocialRepository(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Fatal("db close:", err)
		}
	}()

	if cfg.Migrate {
		if err := migrations.Up(repo.DB()); err != nil {
			logger.Fatal("migrations:", err)
		}
		logger.Println("database migrations applied")
	}

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	srv := api.NewSocialApp(mux, logger, repo, statsUpdater, cfg)

	statsUpdater.Run()
	defer statsUpdater.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Printf("received signal: %s\n", sig)
	case err := <-errCh:
		logger.Println("server:", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("HTTP server shutdown:", err)
	}

	logger.Println("shutdown complete")
}

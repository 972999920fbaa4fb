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

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/kmuller/go-messenger/internal/api"
	"github.com/kmuller/go-messenger/internal/chat"
	"github.com/kmuller/go-messenger/internal/config"
	"github.com/kmuller/go-messenger/internal/database"
	"github.com/kmuller/go-messenger/internal/stats"
)

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
	migrationsDir  string
	allowedOrigins stringSliceFlag
)

func main() {
	logger := log.New(os.Stderr, "[messenger] ", log.LstdFlags)

	// Flag defaults can come from a .env file or the environment.
	if err := godotenv.Load(); err != nil {
		logger.Println("no .env file found, using environment")
	}

	flag.StringVar(&addr, "addr", config.EnvOr("MESSENGER_ADDR", "localhost:8000"), "server address")
	flag.StringVar(&dsn, "dsn", config.EnvOr("MESSENGER_DSN",
		"host=localhost user=postgres password=postgres dbname=postgres sslmode=disable"), "database connection string")
	flag.StringVar(&migrationsDir, "migrations-dir", config.EnvOr("MESSENGER_MIGRATIONS_DIR", "migrations"), "schema migrations directory")
	flag.Var(&allowedOrigins, "allowed-origins", "comma-separated list of allowed origins for CORS")
	flag.Parse()

	cfg, err := config.NewConfig(addr, dsn, migrationsDir, allowedOrigins)
	if err != nil {
		logger.Fatal("config:", err)
	}

	repo, err := database.NewPgMessengerRepository(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Fatal("db close:", err)
		}
	}()

	if err := repo.Migrate(cfg.MigrationsDir); err != nil {
		logger.Fatal("migrate:", err)
	}

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	svc := chat.NewService(repo)

	srv := api.NewMessengerApp(mux, logger, svc, repo, statsUpdater, cfg)

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

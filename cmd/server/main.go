package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/laarne/laundromat/internal/api"
	"github.com/laarne/laundromat/internal/config"
	"github.com/laarne/laundromat/internal/domain/billing"
	"github.com/laarne/laundromat/internal/domain/customers"
	"github.com/laarne/laundromat/internal/domain/inventory"
	"github.com/laarne/laundromat/internal/domain/orders"
	"github.com/laarne/laundromat/internal/domain/pricing"
	"github.com/laarne/laundromat/internal/domain/reports"
	"github.com/laarne/laundromat/internal/infra/db"
	httpx "github.com/laarne/laundromat/internal/infra/http"
	"github.com/laarne/laundromat/internal/infra/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/example.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	policy := inventory.DefaultPolicy()
	apiSrv := api.NewServer(log,
		customers.NewRepo(pool),
		orders.NewRepo(pool, policy),
		inventory.NewRepo(pool),
		billing.NewRepo(pool),
		pricing.NewRepo(pool),
		reports.NewRepo(pool),
	)

	router := httpx.NewRouter(log, cfg.App.Env, cfg.Metrics.Enabled)
	apiSrv.Register(router)

	srv := httpx.New(cfg.HTTP.Addr, router)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

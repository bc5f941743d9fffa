package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anisha0207/lushop/internal/config"
	"github.com/anisha0207/lushop/internal/domain/catalog"
	"github.com/anisha0207/lushop/internal/domain/customers"
	"github.com/anisha0207/lushop/internal/domain/installments"
	"github.com/anisha0207/lushop/internal/domain/managers"
	"github.com/anisha0207/lushop/internal/domain/payments"
	"github.com/anisha0207/lushop/internal/domain/purchases"
	"github.com/anisha0207/lushop/internal/infra/db"
	httpx "github.com/anisha0207/lushop/internal/infra/http"
	"github.com/anisha0207/lushop/internal/infra/logger"
	"github.com/anisha0207/lushop/internal/infra/notify"
	"github.com/anisha0207/lushop/internal/ui"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	stdin := bufio.NewScanner(os.Stdin)
	var user, pass string
	if cfg.Postgres.DSN == "" {
		user, pass, err = ui.ReadCredentials(stdin, os.Stdout)
		if err != nil {
			log.Error("credential prompt failed", "err", err)
			return
		}
	}
	dsn := cfg.DSN(user, pass)

	if err := runMigrations(dsn); err != nil {
		// Usually wrong credentials or an unreachable database; fatal
		// by design, same as a failed connect.
		fmt.Println("Connection Error:", err)
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Println("Connection Error:", err)
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	if user != "" {
		fmt.Println("\nConnected successfully as:", user)
	}
	log.Info("db connected")

	srv := httpx.New(cfg.HTTP.Addr, pool, cfg.Metrics.Enabled)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	notifier, err := notify.New(cfg.Telegram.Token, cfg.Telegram.AdminChatID, log)
	if err != nil {
		log.Error("telegram notifications disabled", "err", err)
	}

	console := ui.New(stdin, os.Stdout, log,
		customers.NewRepo(pool), catalog.NewRepo(pool),
		payments.NewRepo(pool), purchases.NewRepo(pool),
		installments.NewRepo(pool), managers.NewRepo(pool),
		notifier)

	if err := console.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("console error", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	fmt.Println("Goodbye.")
}

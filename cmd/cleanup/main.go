// Command cleanup clears lease columns whose expiry has passed and logs the
// acta backlog per status. Expiry is evaluated whenever a lease is read, so
// a missed run never hands out a live lease twice.
//
// By default it runs once and exits, for an external cron job. With
// -every it keeps sweeping on that interval until SIGINT or SIGTERM.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/actas-backend/internal/adapter/postgres"
	actarepo "github.com/heartmarshall/actas-backend/internal/adapter/postgres/acta"
	"github.com/heartmarshall/actas-backend/internal/app"
	"github.com/heartmarshall/actas-backend/internal/config"
	"github.com/heartmarshall/actas-backend/internal/service/lease"
	"github.com/heartmarshall/actas-backend/pkg/clock"
)

const sweepTimeout = 2 * time.Minute

func main() {
	every := flag.Duration("every", 0, "sweep repeatedly on this interval instead of once")
	flag.Parse()

	if err := run(*every); err != nil {
		fmt.Fprintln(os.Stderr, "cleanup:", err)
		os.Exit(1)
	}
}

func run(every time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log).With(slog.String("cmd", "cleanup"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	actas := actarepo.New(pool)
	s := sweeper{
		leases:  lease.NewService(logger, actas, clock.Real{}, cfg.Lease),
		backlog: actas,
		log:     logger,
	}

	if every <= 0 {
		return s.sweep(ctx)
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		if err := s.sweep(ctx); err != nil {
			logger.ErrorContext(ctx, "sweep failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			logger.Info("cleanup stopped")
			return nil
		case <-ticker.C:
		}
	}
}

type sweeper struct {
	leases  *lease.Service
	backlog *actarepo.Repo
	log     *slog.Logger
}

func (s sweeper) sweep(parent context.Context) error {
	ctx, cancel := context.WithTimeout(parent, sweepTimeout)
	defer cancel()

	released, err := s.leases.ReleaseExpired(ctx)
	if err != nil {
		return err
	}

	counts, err := s.backlog.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("count backlog: %w", err)
	}

	attrs := []any{slog.Int64("released", released)}
	for status, n := range counts {
		attrs = append(attrs, slog.Int64("backlog_"+status.String(), n))
	}
	s.log.InfoContext(ctx, "sweep finished", attrs...)
	return nil
}

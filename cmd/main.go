package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cristianortiz/invoiceAuction/internal/auction/application"
	auctionhttp "github.com/cristianortiz/invoiceAuction/internal/auction/infra/http"
	"github.com/cristianortiz/invoiceAuction/internal/auction/infra/memory"
	"github.com/cristianortiz/invoiceAuction/internal/auction/infra/notify"
	"github.com/cristianortiz/invoiceAuction/internal/auction/infra/postgres"
	auctionws "github.com/cristianortiz/invoiceAuction/internal/auction/infra/websocket"
	"github.com/cristianortiz/invoiceAuction/internal/shared/config"
	"github.com/cristianortiz/invoiceAuction/internal/shared/db"
	"github.com/cristianortiz/invoiceAuction/internal/shared/db/migrations"
	"github.com/cristianortiz/invoiceAuction/internal/shared/httpserver"
	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/cristianortiz/invoiceAuction/internal/shared/websocket"
	walletmem "github.com/cristianortiz/invoiceAuction/internal/wallet/infra/memory"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const journalWriteTimeout = 5 * time.Second

func main() {
	logger := logger.GetLogger()
	defer logger.Sync()

	logger.Info("Starting invoice auction server...")
	if err := run(logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Info("Configuration loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("httpAddr", cfg.HTTPAddr),
		zap.Duration("sweepInterval", cfg.SweepInterval),
		zap.String("bidSpread", cfg.BidSpread),
		zap.Bool("journalEnabled", cfg.JournalEnabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	hub := websocket.NewHub()
	dispatcher := notify.NewDispatcher(cfg.EventBuffer,
		notify.NewLogNotifier(logger),
		auctionws.NewEventBroadcaster(hub),
	)

	if cfg.JournalEnabled {
		if err := migrations.RunMigrations(cfg.MigrationsPath, cfg.DB.DSN()); err != nil {
			return err
		}
		pool, err := db.NewPostgresPool(ctx, cfg.DB.DSN())
		if err != nil {
			return err
		}
		defer pool.Close()
		runID := uuid.New()
		dispatcher.AddSink(postgres.NewEventJournal(pool, runID, journalWriteTimeout))
		logger.Info("Event journal enabled", zap.String("runID", runID.String()))
	}

	engine := application.NewEngine(
		memory.NewInvoiceRepository(),
		walletmem.NewLedger(clock),
		clock,
		application.WithBidSpread(cfg.Spread()),
		application.WithNotifier(dispatcher),
	)
	sweeper := application.NewSweeper(engine, clock, cfg.SweepInterval)
	sweeper.OnSweep = func(res application.SweepResult) {
		if res.Err != nil {
			logger.Warn("Sweep finished with failures", zap.Int("failed", res.Failed), zap.Error(res.Err))
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	wsHandler := auctionws.NewAuctionWSHandler(engine, hub)
	server := httpserver.NewServer(
		auctionhttp.NewAuctionHTTPHandler(engine).RegisterRoutes,
		func(router fiber.Router) { wsHandler.RegisterRoutes(gctx, router) },
	)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		wsHandler.ListenForMessages(gctx)
		return nil
	})
	g.Go(func() error { return ignoreCanceled(dispatcher.Run(gctx)) })
	g.Go(func() error { return ignoreCanceled(sweeper.Run(gctx)) })
	g.Go(func() error { return server.Start(gctx, cfg.HTTPAddr) })

	return g.Wait()
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

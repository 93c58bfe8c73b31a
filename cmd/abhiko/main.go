// Package main запускает HTTP-сервер сервиса абхико.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/abhiko-system/internal/catalog"
	"github.com/mmeshcher/abhiko-system/internal/config"
	"github.com/mmeshcher/abhiko-system/internal/handler"
	"github.com/mmeshcher/abhiko-system/internal/middleware"
	"github.com/mmeshcher/abhiko-system/internal/repository"
	"github.com/mmeshcher/abhiko-system/internal/store"
)

func newRepository(cfg *config.Config) (store.KV, error) {
	switch {
	case cfg.DatabaseURI != "":
		return repository.NewPostgresRepository(cfg.DatabaseURI)
	case cfg.RedisURI != "":
		return repository.NewRedisRepository(cfg.RedisURI)
	default:
		return repository.NewMemoryRepository(), nil
	}
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	repo, err := newRepository(cfg)
	if err != nil {
		sugar.Fatalw("storage initialization error", "error", err.Error())
	}
	defer repo.Close()

	cat := catalog.New(cfg.SimulatedLatency)

	accounts := store.NewAccountStore(repo)
	cart := store.NewCartStore(repo)
	// Подтверждение оплаты занимает втрое больше, чем загрузка списка.
	checkout := store.NewCheckoutFlow(accounts, cart, repo, 3*cfg.SimulatedLatency)
	feed := store.NewFeedStore(repo, cat)

	authMiddleware := middleware.NewAuthMiddleware("abhiko-secret")
	h := handler.NewHandler(accounts, cart, checkout, feed, cat, logger, authMiddleware)

	r := h.SetupRouter()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := feed.Seed(ctx); err != nil {
		sugar.Fatalw("seed error", "error", err.Error())
	}

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фонового перечитывания ленты по сигналу изменения хранилища
	g.Go(func() error {
		if err := feed.StartWatch(ctx); err != nil {
			return fmt.Errorf("feed watch error: %w", err)
		}
		return nil
	})

	// Запуск HTTP-сервера
	g.Go(func() error {
		sugar.Infow("starting abhiko server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown при отмене контекста (сигнал или ошибка в другой горутине)
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

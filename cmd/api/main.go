package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bookshelf/internal/auth"
	"bookshelf/internal/catalog"
	"bookshelf/internal/collection"
	"bookshelf/internal/database"
	apphttp "bookshelf/internal/http"
	"bookshelf/internal/resolver"
	"bookshelf/internal/user"
)

func main() {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Open(ctx, cfg.dsn)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connection OK")

	tokens := auth.NewTokenManager(cfg.jwtSecret, cfg.tokenTTL)
	creds := auth.NewService(auth.NewPostgresRepo(pool))
	users := user.NewPostgresRepo(pool)
	transactor := database.NewPgxTransactor(pool, logger)
	catalogSvc := catalog.NewService(catalog.NewPostgresRepo(pool), transactor, logger)
	collectionSvc := collection.NewService(collection.NewPostgresRepo(pool))

	res := resolver.New(tokens, creds, users, catalogSvc, collectionSvc, transactor, logger)
	handler := apphttp.NewHandler(res)
	router := apphttp.NewRouter(handler, pool, logger, cfg.rateRPS, cfg.rateBurst)

	server := &http.Server{
		Addr:         cfg.addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

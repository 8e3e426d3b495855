package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/config"
	dbpkg "github.com/BruksfildServices01/essentia-tours/internal/db"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/cache"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/payment"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/storage"
	"github.com/BruksfildServices01/essentia-tours/internal/middleware"
	"github.com/BruksfildServices01/essentia-tours/internal/realtime"
	"github.com/BruksfildServices01/essentia-tours/internal/routes"
	ucCheckout "github.com/BruksfildServices01/essentia-tours/internal/usecase/checkout"
)

const shutdownTimeout = 10 * time.Second

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	pool, err := dbpkg.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open pgx pool: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedis(ctx, cfg)
	defer redisCache.Close()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	mp, err := payment.NewMercadoPago(cfg.Payments.MercadoPagoToken)
	if err != nil {
		log.Fatalf("failed to init payments: %v", err)
	}
	var gateway ucCheckout.PixGateway
	if mp != nil {
		gateway = mp
	}

	hub := realtime.NewHub(cfg.Server.CorsAllowedOrigins)

	r := gin.Default()

	dispatcher := routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		DB:      db,
		Pool:    pool,
		Cache:   redisCache,
		Store:   store,
		Gateway: gateway,
		Hub:     hub,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           middleware.NewCORS(cfg)(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	hub.Close()
	dispatcher.Close()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/buffer-service/internal/client/discord"
	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/infra"
	"github.com/s21platform/buffer-service/internal/pkg/jwt"
	"github.com/s21platform/buffer-service/internal/pkg/validator"
	"github.com/s21platform/buffer-service/internal/reconciler"
	db "github.com/s21platform/buffer-service/internal/repository/postgres"
	"github.com/s21platform/buffer-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	discordClient := discord.New(cfg)
	defer discordClient.Close()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Auth.JWTSecret)

	sweeper := reconciler.New(dbRepo, discordClient, cfg)

	handler := rest.New(dbRepo, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	router.Get("/api/buffer/messages", handler.GetMessages)
	router.Get("/api/buffer/messages/{messageID}/exists", handler.MessageExists)

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	// Startup sweep runs in the background so live queries are served while
	// the buffer is still being repaired.
	g.Go(func() error {
		sweepCtx := context.WithValue(ctx, config.KeyLogger, logger)
		sweeper.Run(sweepCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/forkline/chat-service/internal/client/completion"
	"github.com/forkline/chat-service/internal/config"
	api "github.com/forkline/chat-service/internal/generated"
	"github.com/forkline/chat-service/internal/infra"
	"github.com/forkline/chat-service/internal/pkg/jwt"
	"github.com/forkline/chat-service/internal/pkg/tx"
	"github.com/forkline/chat-service/internal/pkg/validator"
	db "github.com/forkline/chat-service/internal/repository/postgres"
	"github.com/forkline/chat-service/internal/rest"
	"github.com/forkline/chat-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	completionClient := completion.New(cfg)

	vldtr := validator.New()
	jwtValidator := jwt.New(cfg.Auth.JWTSecret)

	chatService := service.New(dbRepo, completionClient)

	handler := rest.New(chatService, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthHTTP(jwtValidator)(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

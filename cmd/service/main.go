package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventlink/chat-service/internal/access"
	"github.com/eventlink/chat-service/internal/client/event"
	"github.com/eventlink/chat-service/internal/client/push"
	"github.com/eventlink/chat-service/internal/client/user"
	"github.com/eventlink/chat-service/internal/config"
	"github.com/eventlink/chat-service/internal/infra"
	"github.com/eventlink/chat-service/internal/notify"
	"github.com/eventlink/chat-service/internal/pkg/jwt"
	"github.com/eventlink/chat-service/internal/pkg/tx"
	"github.com/eventlink/chat-service/internal/pkg/validator"
	db "github.com/eventlink/chat-service/internal/repository/postgres"
	"github.com/eventlink/chat-service/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	eventClient := event.New(cfg)
	defer eventClient.Close()

	userClient := user.New(cfg)
	defer userClient.Close()

	pushClient := push.New(cfg)
	defer pushClient.Close()

	authorizer := access.New(eventClient)
	dispatcher := notify.New(dbRepo, userClient, pushClient)
	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Service.JWTSecret)

	handler := rest.New(dbRepo, authorizer, dispatcher, vldtr)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtGenerator)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	rest.AttachRoutes(router, handler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(fmt.Sprintf("cannot start service: %v", err))
	}
}

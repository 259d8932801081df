// Command gistserver локальный эмулятор GitHub Gist API для запуска quist
// без доступа к github.com:
//
//	gistserver -a localhost:8080 -u user:token
//	QUIST_API_URL=http://localhost:8080 quist --basic-auth user:token main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-molecula741/quist/internal/app/config"
	"github.com/m-molecula741/quist/internal/app/controller"
	"github.com/m-molecula741/quist/internal/app/logger"
	"github.com/m-molecula741/quist/internal/app/middleware"
	"github.com/m-molecula741/quist/internal/app/storage"
)

func main() {
	cfg, err := config.NewServerConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	logger.Init(os.Stderr, cfg.LogLevel)

	store, err := storage.NewInMemoryStorage(cfg.FilePath)
	if err != nil {
		log.Fatalf("Ошибка загрузки хранилища: %v", err)
	}

	authMW, err := middleware.NewAuthMiddleware(cfg.BasicAuth)
	if err != nil {
		log.Fatalf("Ошибка настройки аутентификации: %v", err)
	}

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           controller.NewHTTPController(store, authMW, cfg.BaseURL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info().Str("address", cfg.ServerAddress).Msg("Сервер запущен")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	<-done
	logger.Info().Msg("Сервер останавливается...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn().Err(err).Msg("Ошибка при остановке сервера")
	}
	if err := store.Backup(); err != nil {
		logger.Warn().Err(err).Msg("Ошибка сохранения gist")
	}

	logger.Info().Int("gists", store.Len()).Msg("Сервер остановлен")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ignatzorin/job-qualifier/internal/catalog"
	"github.com/ignatzorin/job-qualifier/internal/config"
	httpHandlers "github.com/ignatzorin/job-qualifier/internal/http/handlers"
	httpRouter "github.com/ignatzorin/job-qualifier/internal/http/router"
	"github.com/ignatzorin/job-qualifier/internal/logger"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	positions := catalog.Positions()
	checker := qualification.NewCheckApplicationUseCase(positions)

	// HTTP хэндлеры.
	formHandler := httpHandlers.NewFormHandler(checker)
	qualificationHandler := httpHandlers.NewQualificationHandler(checker)
	healthHandler := httpHandlers.NewHealthHandler(len(positions))

	engine := httpRouter.SetupRouter(cfg, formHandler, qualificationHandler, healthHandler)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	}()

	logger.Log.WithField("port", cfg.HTTPPort).Infof("main: HTTP сервер запущен, позиций в каталоге: %d", len(positions))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.WithError(err).Fatal("main: сервер завершился с ошибкой")
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horse-medical-records/internal/app"
	"horse-medical-records/internal/platform/config"
	"horse-medical-records/internal/platform/logger"
	"horse-medical-records/internal/router"
)

// @title Horse Medical Records API
// @version 1.0
// @description Historial veterinario por caballo: peso, visitas, análisis de sangre y cuidados.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromStrings("error", "text", "horse-medical-records").Error("config error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	log := logger.NewFromStrings(cfg.LogLevel, cfg.LogFormat, cfg.AppName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	defer a.Close()

	// El seed corre antes de aceptar requests.
	if cfg.SeedOnStart {
		rep, err := a.Seeder.Run(ctx)
		if err != nil {
			log.Warn("seed incomplete", map[string]any{"err": err.Error()})
		} else {
			log.Info("seed done", map[string]any{"horses": rep.Horses, "records": rep.Total()})
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{App: a}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "storage": string(cfg.StorageDriver)})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

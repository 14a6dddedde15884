package router

import (
	"net/http"

	_ "horse-medical-records/docs"
	"horse-medical-records/internal/app"
	"horse-medical-records/internal/domain/bloodtests"
	"horse-medical-records/internal/domain/care"
	"horse-medical-records/internal/domain/horses"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/domain/visits"
	"horse-medical-records/internal/domain/weights"
	"horse-medical-records/internal/middleware"
	"horse-medical-records/internal/ports/notify"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	App *app.App

	// Opcional: por defecto el Notifier del App.
	Notifier notify.Notifier
}

func NewRouter(opts Options) http.Handler {
	a := opts.App
	n := opts.Notifier
	if n == nil {
		n = a.Notifier
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(a.Log))
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", a.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	horses.RegisterRoutes(r, a.Horses)
	weights.RegisterRoutes(r, a.Weights, a.Horses, n)
	visits.RegisterRoutes(r, a.Visits, a.Horses, n)
	bloodtests.RegisterRoutes(r, a.BloodTests, a.Horses, n, a.Metrics)
	care.RegisterRoutes(r, a.Care, a.Horses, n)
	records.RegisterRoutes(r, a.Deps, a.Horses, n)

	return r
}

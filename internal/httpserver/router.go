package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"chronotense/internal/handlers"
	"chronotense/internal/metrics"
	"chronotense/internal/middleware"
)

// RequestTimeout bounds a whole HTTP request. A level generation is a
// single large structured call, so it is far above typical API budgets.
const RequestTimeout = 90 * time.Second

func SetupRouter(r *chi.Mux, baseLogger *zap.Logger, contentHandler *handlers.ContentHandler) {
	r.Use(metrics.Middleware)

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)

	r.Use(middleware.LoggingContext(baseLogger))
	r.Use(middleware.Recoverer())
	r.Use(middleware.Timeout(RequestTimeout))
	r.Use(middleware.MaxBodySize(64 * 1024))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/levels", contentHandler.Levels)
		r.Get("/tenses", contentHandler.Tenses)
		r.Get("/levels/{level}/content", contentHandler.LevelContent)
		r.Get("/levels/{level}/share", contentHandler.Share)
		r.Post("/examples", contentHandler.Example)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", metrics.Handler())
}

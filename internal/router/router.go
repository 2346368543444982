package router

import (
	"database/sql"
	"net/http"

	mem "dachshund-registry/internal/adapters/storage/memory"
	pg "dachshund-registry/internal/adapters/storage/postgres"
	"dachshund-registry/internal/domain/dachshunds"
	"dachshund-registry/internal/middleware"
	"dachshund-registry/internal/platform/logger"
	"dachshund-registry/internal/platform/metrics"
	"dachshund-registry/internal/views"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Log logger.Logger

	// DB opcional: con handle usa Postgres, sin handle in-memory.
	DB *sql.DB

	// Repo permite inyectar el store directo (tests). Gana sobre DB.
	Repo dachshunds.Repository

	// Metrics opcional; nil desactiva /metrics y el middleware.
	Metrics *metrics.Metrics
}

func New(opts Options) (http.Handler, error) {
	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{App: "dachshund-registry"})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repo := opts.Repo
	if repo == nil {
		if opts.DB != nil {
			repo = pg.NewDachshundsRepo(opts.DB)
		} else {
			repo = mem.NewDachshundsRepo()
		}
	}

	rnd, err := views.New()
	if err != nil {
		return nil, err
	}

	svc := dachshunds.NewService(repo)
	dachshunds.RegisterRoutes(r, svc, rnd, log)

	return r, nil
}

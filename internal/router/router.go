package router

import (
	"net/http"

	"petclinic-api/internal/adapters/storage/memory"
	_ "petclinic-api/internal/docs"
	"petclinic-api/internal/domain/clinic"
	"petclinic-api/internal/domain/users"
	"petclinic-api/internal/middleware"
	"petclinic-api/internal/platform/logger"
	"petclinic-api/internal/platform/metrics"
	"petclinic-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultCacheSize = 16

type Options struct {
	Logger   logger.Logger
	Verifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcionales: si no vienen, se usa el store en memoria.
	Store clinic.Store
	Users users.Repository

	// Si viene, se expone /metrics y se miden requests y cache.
	Metrics *metrics.Metrics

	Lookup    clinic.LookupPolicy
	CacheSize int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	store := opts.Store
	if store == nil {
		store = memory.NewStore()
	}
	userRepo := opts.Users
	if userRepo == nil {
		userRepo = memory.NewUserRepo()
	}

	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	// size > 0: no puede fallar
	cache, _ := clinic.NewKindCache(size)
	if opts.Metrics != nil {
		cache.OnLookup(opts.Metrics.ObserveCache)
	}

	lookup := opts.Lookup
	if lookup == "" {
		lookup = clinic.LookupMask
	}

	clinicSvc := clinic.NewService(store,
		clinic.WithLogger(log.With(map[string]any{"component": "clinic"})),
		clinic.WithLookupPolicy(lookup),
		clinic.WithCache(cache),
	)
	usersSvc := users.NewService(userRepo, log.With(map[string]any{"component": "users"}))

	clinic.RegisterRoutes(r, clinicSvc)
	users.RegisterRoutes(r, usersSvc)

	return r
}

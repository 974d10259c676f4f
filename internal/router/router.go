package router

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "zoo-dashboard/docs"
	"zoo-dashboard/internal/adapters/auth/remote"
	"zoo-dashboard/internal/adapters/seed"
	mem "zoo-dashboard/internal/adapters/storage/memory"
	"zoo-dashboard/internal/config"
	"zoo-dashboard/internal/domain/animals"
	"zoo-dashboard/internal/domain/dashboard"
	"zoo-dashboard/internal/domain/reports"
	"zoo-dashboard/internal/domain/resources"
	"zoo-dashboard/internal/domain/session"
	"zoo-dashboard/internal/middleware"
	"zoo-dashboard/internal/platform/logger"
	"zoo-dashboard/internal/platform/metrics"
	"zoo-dashboard/internal/ports/auth"
)

type Options struct {
	Config *config.Config // nil => config.Default()
	Logger logger.Logger  // nil => sin logs

	// Opcional: si viene, expone /metrics y cuenta requests y mutaciones.
	Metrics *metrics.Metrics

	// Opcional: si no viene, se elige según Config.Session.File.
	SessionStorage session.Storage

	// Fuente de las series sintéticas del dashboard. nil => sembrada con la hora.
	Rand *rand.Rand

	// Referencia de fechas para el seed. Zero => hoy.
	SeedNow time.Time
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log, opts.Metrics))

	// Repos in-memory
	animalRepo := mem.NewAnimalRepo(opts.Metrics)
	resourceRepo := mem.NewResourceRepo(opts.Metrics)
	reportRepo := mem.NewReportRepo(opts.Metrics)

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	resourcesSvc := resources.NewService(resourceRepo)
	reportsSvc := reports.NewService(reportRepo)
	dashboardSvc := dashboard.NewService(animalsSvc, resourcesSvc, reportsSvc, opts.Rand)

	if cfg.Seed.Enabled {
		f := seed.Generate(seed.Config{
			Seed:      cfg.Seed.Value,
			Animals:   cfg.Seed.Animals,
			Resources: cfg.Seed.Resources,
			Reports:   cfg.Seed.Reports,
			Now:       opts.SeedNow,
		})
		err := seed.Load(context.Background(), f, seed.Targets{
			Animals:   animalsSvc,
			Resources: resourcesSvc,
			Reports:   reportsSvc,
		})
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		log.Info("seed loaded", map[string]any{
			"seed":      cfg.Seed.Value,
			"animals":   len(f.Animals),
			"resources": len(f.Resources),
			"reports":   len(f.Reports),
		})
	}

	store := opts.SessionStorage
	if store == nil {
		if cfg.Session.File != "" {
			store = session.NewFileStorage(cfg.Session.File)
		} else {
			store = session.NewMemoryStorage()
		}
	}
	sessionSvc := session.NewService(store, cfg.Session.LoginDelay)
	if st, err := sessionSvc.Restore(context.Background()); err != nil {
		log.Warn("session restore failed", map[string]any{"error": err.Error()})
	} else if st.Authenticated {
		log.Info("session restored", map[string]any{"email": st.User.Email})
	}

	// Sesión local primero; el IAM remoto solo si está configurado.
	verifiers := []auth.AuthVerifier{sessionSvc}
	rv, err := remote.New(remote.Config{
		BaseURL: cfg.Auth.RemoteURL,
		APIKey:  cfg.Auth.RemoteAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("remote auth: %w", err)
	}
	if rv != nil {
		verifiers = append(verifiers, rv)
	}
	r.Use(middleware.AuthContext(auth.FirstOf(verifiers...), cfg.Auth.DevMode))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Sesión: login público, logout autenticado
	session.RegisterRoutes(r, sessionSvc, middleware.RequireAuth)

	// Rutas por módulo (requieren sesión)
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth)

		animals.RegisterRoutes(pr, animalsSvc)
		resources.RegisterRoutes(pr, resourcesSvc)
		reports.RegisterRoutes(pr, reportsSvc)
		dashboard.RegisterRoutes(pr, dashboardSvc)
	})

	return r, nil
}

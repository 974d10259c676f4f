package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dashboard", func(dr chi.Router) {
		dr.Get("/overview", overviewHandler(svc))
		dr.Get("/health", healthHandler(svc))
		dr.Get("/species", speciesHandler(svc))
		dr.Get("/resources/status", resourceStatusHandler(svc))
		dr.Get("/resources/categories", resourceCategoriesHandler(svc))

		// Series sintéticas: cambian en cada request.
		dr.Get("/population-trend", populationTrendHandler(svc))
		dr.Get("/resource-availability", resourceAvailabilityHandler(svc))
	})
}

type healthResponse struct {
	Counts       HealthCounts `json:"counts"`
	Distribution []NameValue  `json:"distribution"`
}

// overviewHandler godoc
// @Summary Resumen del dashboard
// @Description Totales para las tarjetas: animales, recursos disponibles, animales sanos y en observación, stock bajo e incidentes de los últimos 7 días.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {object} Overview
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /dashboard/overview [get]
func overviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ov, err := svc.Overview(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ov)
	}
}

// healthHandler godoc
// @Summary Conteo por estado de salud
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {object} healthResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /dashboard/health [get]
func healthHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, dist, err := svc.Health(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Counts: counts, Distribution: dist})
	}
}

// speciesHandler godoc
// @Summary Animales por especie
// @Description Pares nombre/cantidad en orden de primera aparición.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {array} NameValue
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /dashboard/species [get]
func speciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Species(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// resourceStatusHandler godoc
// @Summary Recursos por disponibilidad
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {object} ResourceStatusCounts
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /dashboard/resources/status [get]
func resourceStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ResourceStatus(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// resourceCategoriesHandler godoc
// @Summary Recursos por categoría
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {array} NameValue
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /dashboard/resources/categories [get]
func resourceCategoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ResourceCategories(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// populationTrendHandler godoc
// @Summary Tendencia de población (sintética)
// @Description 6 meses, del más antiguo al actual. Datos aleatorios acotados, no históricos.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {array} PopulationPoint
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard/population-trend [get]
func populationTrendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.PopulationTrend())
	}
}

// resourceAvailabilityHandler godoc
// @Summary Disponibilidad de recursos (sintética)
// @Description 6 meses de porcentajes por categoría, piso 50.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Success 200 {array} AvailabilityPoint
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard/resource-availability [get]
func resourceAvailabilityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.ResourceAvailability())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package resources

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"zoo-dashboard/internal/query"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/resources", func(rr chi.Router) {
		rr.Get("/", listResourcesHandler(svc))
		rr.Post("/", createResourceHandler(svc))

		rr.Get("/{resourceID}", getResourceHandler(svc))
		rr.Patch("/{resourceID}", updateResourceHandler(svc))
		rr.Delete("/{resourceID}", deleteResourceHandler(svc))
	})
}

type createResourceRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Quantity       int    `json:"quantity"`
	Unit           string `json:"unit"`
	Status         string `json:"status"`
	LastRestocked  string `json:"last_restocked"`  // YYYY-MM-DD
	ExpirationDate string `json:"expiration_date"` // YYYY-MM-DD opcional
	Supplier       string `json:"supplier"`
}

type updateResourceRequest struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Quantity      *int    `json:"quantity"`
	Unit          *string `json:"unit"`
	Status        *string `json:"status"`
	LastRestocked *string `json:"last_restocked"`
	Supplier      *string `json:"supplier"`

	// Ausente = no tocar, null = limpiar, "YYYY-MM-DD" = reemplazar.
	ExpirationDate json.RawMessage `json:"expiration_date"`
}

type resourceResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Quantity       int      `json:"quantity"`
	Unit           Unit     `json:"unit"`
	Status         Status   `json:"status"`
	LastRestocked  string   `json:"last_restocked"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
	Supplier       string   `json:"supplier,omitempty"`
}

type resourcePageResponse struct {
	Items      []resourceResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
}

// listResourcesHandler godoc
// @Summary Listar recursos
// @Description Búsqueda por nombre o categoría, filtros exactos por categoría y estado, orden estable y paginación 1-based.
// @Tags resources
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param q query string false "Texto a buscar en nombre o categoría"
// @Param category query string false "Food | Medical | Equipment"
// @Param status query string false "Available | Low Stock | Out of Stock"
// @Param sort query string false "name | category | quantity | unit | status | last_restocked. Por defecto name"
// @Param order query string false "asc | desc. Por defecto asc"
// @Param page query int false "Página (1-based)"
// @Param page_size query int false "Tamaño de página (1-100). Por defecto 5"
// @Success 200 {object} resourcePageResponse
// @Failure 400 {string} string "parámetros inválidos / campo de orden desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /resources [get]
func listResourcesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := query.ParseParams(r.URL.Query(), "name", query.Asc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		page, err := svc.List(r.Context(), ListFilter{
			Search:   params.Search,
			Category: r.URL.Query().Get("category"),
			Status:   r.URL.Query().Get("status"),
		}, params)
		if err != nil {
			if errors.Is(err, query.ErrUnknownSortField) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := resourcePageResponse{
			Items:      make([]resourceResponse, 0, len(page.Items)),
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		}
		for _, res := range page.Items {
			out.Items = append(out.Items, toResourceResponse(res))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createResourceHandler godoc
// @Summary Registrar recurso
// @Description El estado lo decide quien carga el recurso; no se calcula a partir de la cantidad.
// @Tags resources
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param payload body createResourceRequest true "Datos del recurso; fechas en formato YYYY-MM-DD"
// @Success 201 {object} resourceResponse
// @Failure 400 {string} string "invalid json / fecha inválida / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "id duplicado"
// @Router /resources [post]
func createResourceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createResourceRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		restocked, err := parseDate(req.LastRestocked)
		if err != nil {
			http.Error(w, "last_restocked must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var exp *time.Time
		if strings.TrimSpace(req.ExpirationDate) != "" {
			t, err := parseDate(req.ExpirationDate)
			if err != nil {
				http.Error(w, "expiration_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			exp = &t
		}

		res, err := svc.Add(r.Context(), Resource{
			ID:             req.ID,
			Name:           req.Name,
			Category:       Category(req.Category),
			Quantity:       req.Quantity,
			Unit:           Unit(req.Unit),
			Status:         Status(req.Status),
			LastRestocked:  restocked,
			ExpirationDate: exp,
			Supplier:       req.Supplier,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toResourceResponse(res))
	}
}

// getResourceHandler godoc
// @Summary Obtener recurso
// @Tags resources
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param resourceID path string true "ID del recurso"
// @Success 200 {object} resourceResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "resource not found"
// @Router /resources/{resourceID} [get]
func getResourceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetByID(r.Context(), chi.URLParam(r, "resourceID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResourceResponse(res))
	}
}

// updateResourceHandler godoc
// @Summary Actualizar recurso (parcial)
// @Description Solo se modifican los campos enviados. "expiration_date": null limpia la fecha.
// @Tags resources
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param resourceID path string true "ID del recurso"
// @Param payload body updateResourceRequest true "Campos a modificar"
// @Success 200 {object} resourceResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "resource not found"
// @Router /resources/{resourceID} [patch]
func updateResourceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateResourceRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := Patch{
			Name:     req.Name,
			Quantity: req.Quantity,
			Supplier: req.Supplier,
		}
		if req.Category != nil {
			c := Category(*req.Category)
			p.Category = &c
		}
		if req.Unit != nil {
			u := Unit(*req.Unit)
			p.Unit = &u
		}
		if req.Status != nil {
			s := Status(*req.Status)
			p.Status = &s
		}
		if req.LastRestocked != nil {
			t, err := parseDate(*req.LastRestocked)
			if err != nil {
				http.Error(w, "last_restocked must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			p.LastRestocked = &t
		}
		if len(req.ExpirationDate) > 0 {
			if string(req.ExpirationDate) == "null" {
				p.ClearExpiration = true
			} else {
				var s string
				if err := json.Unmarshal(req.ExpirationDate, &s); err != nil {
					http.Error(w, "expiration_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				t, err := parseDate(s)
				if err != nil {
					http.Error(w, "expiration_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				p.ExpirationDate = &t
			}
		}

		updated, found, err := svc.Update(r.Context(), chi.URLParam(r, "resourceID"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			http.Error(w, "resource not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toResourceResponse(updated))
	}
}

// deleteResourceHandler godoc
// @Summary Eliminar recurso
// @Description Idempotente: un id inexistente también responde 204.
// @Tags resources
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param resourceID path string true "ID del recurso"
// @Success 204 "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /resources/{resourceID} [delete]
func deleteResourceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Delete(r.Context(), chi.URLParam(r, "resourceID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toResourceResponse(r Resource) resourceResponse {
	out := resourceResponse{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		Status:        r.Status,
		LastRestocked: r.LastRestocked.Format(dateLayout),
		Supplier:      r.Supplier,
	}
	if r.ExpirationDate != nil {
		out.ExpirationDate = r.ExpirationDate.Format(dateLayout)
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// decodeJSON rechaza campos desconocidos, igual en alta y en PATCH.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "resource not found", http.StatusNotFound)
	case errors.Is(err, ErrAlreadyExists):
		http.Error(w, "resource id already exists", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

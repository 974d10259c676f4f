package reports

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
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/", listReportsHandler(svc))
		rr.Post("/", createReportHandler(svc))

		rr.Get("/{reportID}", getReportHandler(svc))
		rr.Patch("/{reportID}", updateReportHandler(svc))
		rr.Delete("/{reportID}", deleteReportHandler(svc))

		// Visor de reportes: referencia al archivo (o placeholder por categoría).
		rr.Get("/{reportID}/file", reportFileHandler(svc))
	})
}

type createReportRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"` // YYYY-MM-DD
	Author   string `json:"author"`
	FileURL  string `json:"file_url"`
	Content  string `json:"content"`
}

type updateReportRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Date     *string `json:"date"`
	Author   *string `json:"author"`
	FileURL  *string `json:"file_url"`
	Content  *string `json:"content"`
}

type reportResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
	Author   string   `json:"author"`
	FileURL  string   `json:"file_url"`
	Content  string   `json:"content,omitempty"`
}

type reportPageResponse struct {
	Items      []reportResponse `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

type reportFileResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
}

// listReportsHandler godoc
// @Summary Listar reportes
// @Description Búsqueda en título, categoría y autor; filtro exacto por categoría; orden estable y paginación 1-based.
// @Tags reports
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param q query string false "Texto a buscar en título, categoría o autor"
// @Param category query string false "Health | Inventory | Financial | Incident"
// @Param sort query string false "title | category | date | author. Por defecto date"
// @Param order query string false "asc | desc. Por defecto desc"
// @Param page query int false "Página (1-based)"
// @Param page_size query int false "Tamaño de página (1-100). Por defecto 5"
// @Success 200 {object} reportPageResponse
// @Failure 400 {string} string "parámetros inválidos / campo de orden desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /reports [get]
func listReportsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := query.ParseParams(r.URL.Query(), "date", query.Desc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		page, err := svc.List(r.Context(), ListFilter{
			Search:   params.Search,
			Category: r.URL.Query().Get("category"),
		}, params)
		if err != nil {
			if errors.Is(err, query.ErrUnknownSortField) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := reportPageResponse{
			Items:      make([]reportResponse, 0, len(page.Items)),
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		}
		for _, rep := range page.Items {
			out.Items = append(out.Items, toReportResponse(rep))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createReportHandler godoc
// @Summary Registrar reporte
// @Description Sin file_url el reporte usa el placeholder de su categoría.
// @Tags reports
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param payload body createReportRequest true "Datos del reporte; date en formato YYYY-MM-DD"
// @Success 201 {object} reportResponse
// @Failure 400 {string} string "invalid json / fecha inválida / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "id duplicado"
// @Router /reports [post]
func createReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReportRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := parseDate(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rep, err := svc.Add(r.Context(), Report{
			ID:       req.ID,
			Title:    req.Title,
			Category: Category(req.Category),
			Date:     d,
			Author:   req.Author,
			FileURL:  req.FileURL,
			Content:  req.Content,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

// getReportHandler godoc
// @Summary Obtener reporte
// @Tags reports
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param reportID path string true "ID del reporte"
// @Success 200 {object} reportResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "report not found"
// @Router /reports/{reportID} [get]
func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.GetByID(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

// updateReportHandler godoc
// @Summary Actualizar reporte (parcial)
// @Tags reports
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param reportID path string true "ID del reporte"
// @Param payload body updateReportRequest true "Campos a modificar"
// @Success 200 {object} reportResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "report not found"
// @Router /reports/{reportID} [patch]
func updateReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateReportRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := Patch{
			Title:   req.Title,
			Author:  req.Author,
			FileURL: req.FileURL,
			Content: req.Content,
		}
		if req.Category != nil {
			c := Category(*req.Category)
			p.Category = &c
		}
		if req.Date != nil {
			t, err := parseDate(*req.Date)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			p.Date = &t
		}

		updated, found, err := svc.Update(r.Context(), chi.URLParam(r, "reportID"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toReportResponse(updated))
	}
}

// deleteReportHandler godoc
// @Summary Eliminar reporte
// @Description Idempotente: un id inexistente también responde 204.
// @Tags reports
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param reportID path string true "ID del reporte"
// @Success 204 "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /reports/{reportID} [delete]
func deleteReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Delete(r.Context(), chi.URLParam(r, "reportID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// reportFileHandler godoc
// @Summary Archivo del reporte
// @Description Devuelve la URL del archivo. Si el reporte no tiene archivo propio se devuelve un PDF de ejemplo según la categoría (no hay generación real).
// @Tags reports
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param reportID path string true "ID del reporte"
// @Success 200 {object} reportFileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "report not found"
// @Router /reports/{reportID}/file [get]
func reportFileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "reportID")
		url, placeholder, err := svc.FileURL(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reportFileResponse{
			ID:          strings.TrimSpace(id),
			URL:         url,
			Placeholder: placeholder,
		})
	}
}

func toReportResponse(r Report) reportResponse {
	return reportResponse{
		ID:       r.ID,
		Title:    r.Title,
		Category: r.Category,
		Date:     r.Date.Format(dateLayout),
		Author:   r.Author,
		FileURL:  r.FileURL,
		Content:  r.Content,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

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
		http.Error(w, "report not found", http.StatusNotFound)
	case errors.Is(err, ErrAlreadyExists):
		http.Error(w, "report id already exists", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package animals

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
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))

		ar.Post("/{animalID}/medical-records", addMedicalRecordHandler(svc))
	})
}

type medicalRecordPayload struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Type      string `json:"type"`
	Notes     string `json:"notes"`
	Treatment string `json:"treatment,omitempty"`
}

type createAnimalRequest struct {
	ID                      string                 `json:"id"` // opcional; si viene se respeta
	Name                    string                 `json:"name"`
	Species                 string                 `json:"species"`
	Gender                  string                 `json:"gender"`
	Age                     int                    `json:"age"`
	HealthStatus            string                 `json:"health_status"`
	Location                string                 `json:"location"`
	DietRequirements        string                 `json:"diet_requirements"`
	MedicalHistory          []medicalRecordPayload `json:"medical_history"`
	ArrivalDate             string                 `json:"arrival_date"` // YYYY-MM-DD
	ImageURL                string                 `json:"image_url"`
	Description             string                 `json:"description"`
	SpecialCareInstructions string                 `json:"special_care_instructions"`
}

type updateAnimalRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name                    *string                 `json:"name"`
	Species                 *string                 `json:"species"`
	Gender                  *string                 `json:"gender"`
	Age                     *int                    `json:"age"`
	HealthStatus            *string                 `json:"health_status"`
	Location                *string                 `json:"location"`
	DietRequirements        *string                 `json:"diet_requirements"`
	MedicalHistory          *[]medicalRecordPayload `json:"medical_history"` // reemplaza el historial completo
	ArrivalDate             *string                 `json:"arrival_date"`
	ImageURL                *string                 `json:"image_url"`
	Description             *string                 `json:"description"`
	SpecialCareInstructions *string                 `json:"special_care_instructions"`
}

type animalResponse struct {
	ID                      string                 `json:"id"`
	Name                    string                 `json:"name"`
	Species                 string                 `json:"species"`
	Gender                  Gender                 `json:"gender"`
	Age                     int                    `json:"age"`
	HealthStatus            HealthStatus           `json:"health_status"`
	Location                string                 `json:"location"`
	DietRequirements        string                 `json:"diet_requirements"`
	MedicalHistory          []medicalRecordPayload `json:"medical_history"`
	ArrivalDate             string                 `json:"arrival_date"`
	ImageURL                string                 `json:"image_url,omitempty"`
	Description             string                 `json:"description,omitempty"`
	SpecialCareInstructions string                 `json:"special_care_instructions,omitempty"`
}

type animalPageResponse struct {
	Items      []animalResponse `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Búsqueda (nombre/especie, sin distinguir mayúsculas), filtros exactos, orden estable y paginación 1-based. Páginas fuera de rango se acotan.
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param q query string false "Texto a buscar en nombre o especie"
// @Param health query string false "Healthy | Concerning | Critical"
// @Param species query string false "Especie exacta"
// @Param sort query string false "name | species | gender | age | health_status | location | arrival_date. Por defecto name"
// @Param order query string false "asc | desc. Por defecto asc"
// @Param page query int false "Página (1-based)"
// @Param page_size query int false "Tamaño de página (1-100). Por defecto 5"
// @Success 200 {object} animalPageResponse
// @Failure 400 {string} string "parámetros inválidos / campo de orden desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := query.ParseParams(r.URL.Query(), "name", query.Asc)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		page, err := svc.List(r.Context(), ListFilter{
			Search:  params.Search,
			Health:  r.URL.Query().Get("health"),
			Species: r.URL.Query().Get("species"),
		}, params)
		if err != nil {
			if errors.Is(err, query.ErrUnknownSortField) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := animalPageResponse{
			Items:      make([]animalResponse, 0, len(page.Items)),
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		}
		for _, a := range page.Items {
			out.Items = append(out.Items, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Agrega un animal al final de la colección. Si no se envía id se genera uno de 8 caracteres.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param payload body createAnimalRequest true "Datos del animal; fechas en formato YYYY-MM-DD"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / fecha inválida / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "id duplicado"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		arrival, err := parseDate(req.ArrivalDate)
		if err != nil {
			http.Error(w, "arrival_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		history, err := toMedicalRecords(req.MedicalHistory)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Add(r.Context(), Animal{
			ID:                      req.ID,
			Name:                    req.Name,
			Species:                 req.Species,
			Gender:                  Gender(req.Gender),
			Age:                     req.Age,
			HealthStatus:            HealthStatus(req.HealthStatus),
			Location:                req.Location,
			DietRequirements:        req.DietRequirements,
			MedicalHistory:          history,
			ArrivalDate:             arrival,
			ImageURL:                req.ImageURL,
			Description:             req.Description,
			SpecialCareInstructions: req.SpecialCareInstructions,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal (parcial)
// @Description Solo se modifican los campos enviados. medical_history, si viene, reemplaza el historial.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param animalID path string true "ID del animal"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateAnimalRequest
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p := Patch{
			Name:                    req.Name,
			Species:                 req.Species,
			Age:                     req.Age,
			Location:                req.Location,
			DietRequirements:        req.DietRequirements,
			ImageURL:                req.ImageURL,
			Description:             req.Description,
			SpecialCareInstructions: req.SpecialCareInstructions,
		}
		if req.Gender != nil {
			g := Gender(*req.Gender)
			p.Gender = &g
		}
		if req.HealthStatus != nil {
			h := HealthStatus(*req.HealthStatus)
			p.HealthStatus = &h
		}
		if req.ArrivalDate != nil {
			t, err := parseDate(*req.ArrivalDate)
			if err != nil {
				http.Error(w, "arrival_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			p.ArrivalDate = &t
		}
		if req.MedicalHistory != nil {
			h, err := toMedicalRecords(*req.MedicalHistory)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			p.MedicalHistory = &h
		}

		updated, found, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal
// @Description Idempotente: un id inexistente también responde 204.
// @Tags animals
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param animalID path string true "ID del animal"
// @Success 204 "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// addMedicalRecordHandler godoc
// @Summary Agregar registro médico
// @Description Agrega una entrada al final del historial médico del animal.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de sesión"
// @Param animalID path string true "ID del animal"
// @Param payload body medicalRecordPayload true "Registro; date en formato YYYY-MM-DD"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / fecha inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/medical-records [post]
func addMedicalRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req medicalRecordPayload
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		recs, err := toMedicalRecords([]medicalRecordPayload{req})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, found, err := svc.AddMedicalRecord(r.Context(), chi.URLParam(r, "animalID"), recs[0])
		if err != nil {
			writeError(w, err)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func toAnimalResponse(a Animal) animalResponse {
	hist := make([]medicalRecordPayload, 0, len(a.MedicalHistory))
	for _, m := range a.MedicalHistory {
		hist = append(hist, medicalRecordPayload{
			Date:      m.Date.Format(dateLayout),
			Type:      m.Type,
			Notes:     m.Notes,
			Treatment: m.Treatment,
		})
	}
	return animalResponse{
		ID:                      a.ID,
		Name:                    a.Name,
		Species:                 a.Species,
		Gender:                  a.Gender,
		Age:                     a.Age,
		HealthStatus:            a.HealthStatus,
		Location:                a.Location,
		DietRequirements:        a.DietRequirements,
		MedicalHistory:          hist,
		ArrivalDate:             a.ArrivalDate.Format(dateLayout),
		ImageURL:                a.ImageURL,
		Description:             a.Description,
		SpecialCareInstructions: a.SpecialCareInstructions,
	}
}

func toMedicalRecords(in []medicalRecordPayload) ([]MedicalRecord, error) {
	out := make([]MedicalRecord, 0, len(in))
	for _, m := range in {
		d, err := parseDate(m.Date)
		if err != nil {
			return nil, errors.New("medical record date must be YYYY-MM-DD")
		}
		out = append(out, MedicalRecord{
			Date:      d,
			Type:      m.Type,
			Notes:     m.Notes,
			Treatment: m.Treatment,
		})
	}
	return out, nil
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
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrAlreadyExists):
		http.Error(w, "animal id already exists", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package animals

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"zoo-dashboard/internal/platform/ids"
	"zoo-dashboard/internal/query"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// reintentos si el id generado ya existe
const maxIDAttempts = 5

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: ids.New,
	}
}

// Add agrega el animal al final de la colección. Si no trae ID se genera uno.
func (s *Service) Add(ctx context.Context, a Animal) (Animal, error) {
	a = normalize(a)
	if err := validate(a); err != nil {
		return Animal{}, err
	}

	if a.ID != "" {
		if err := s.repo.Create(ctx, a); err != nil {
			return Animal{}, err
		}
		return a, nil
	}

	for i := 0; i < maxIDAttempts; i++ {
		a.ID = s.newID()
		err := s.repo.Create(ctx, a)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, ErrAlreadyExists) {
			return Animal{}, err
		}
	}
	return Animal{}, fmt.Errorf("generate animal id: %w", ErrAlreadyExists)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// All devuelve la colección completa en orden de inserción.
func (s *Service) All(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// Update mezcla los campos presentes en p. Si el id no existe es un no-op:
// devuelve found=false sin error.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Animal, bool, error) {
	if err := p.Validate(); err != nil {
		return Animal{}, false, err
	}
	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), p.Apply)
	if errors.Is(err, ErrNotFound) {
		return Animal{}, false, nil
	}
	if err != nil {
		return Animal{}, false, err
	}
	return updated, true, nil
}

// Delete es idempotente: un id inexistente no es error.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

// AddMedicalRecord agrega una entrada al historial. No-op si el animal no existe.
func (s *Service) AddMedicalRecord(ctx context.Context, id string, rec MedicalRecord) (Animal, bool, error) {
	rec.Type = strings.TrimSpace(rec.Type)
	rec.Notes = strings.TrimSpace(rec.Notes)
	rec.Treatment = strings.TrimSpace(rec.Treatment)
	if rec.Date.IsZero() || rec.Type == "" {
		return Animal{}, false, ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), func(a Animal) Animal {
		a = a.Clone()
		a.MedicalHistory = append(a.MedicalHistory, rec)
		return a
	})
	if errors.Is(err, ErrNotFound) {
		return Animal{}, false, nil
	}
	if err != nil {
		return Animal{}, false, err
	}
	return updated, true, nil
}

// ListFilter: Search busca en nombre/especie; Health y Species son exactos (case-insensitive).
type ListFilter struct {
	Search  string
	Health  string
	Species string
}

func (s *Service) List(ctx context.Context, f ListFilter, p query.Params) (query.Page[Animal], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return query.Page[Animal]{}, err
	}
	sorted, err := query.Sort(Filter(items, f), SortFields, p.Sort, p.Order)
	if err != nil {
		return query.Page[Animal]{}, err
	}
	return query.Paginate(sorted, p.Page, p.PageSize), nil
}

// Filter aplica ListFilter conservando el orden de entrada.
func Filter(items []Animal, f ListFilter) []Animal {
	return query.Filter(items,
		func(a Animal) bool { return query.MatchesAny(f.Search, a.Name, a.Species) },
		func(a Animal) bool { return query.EqualsFold(string(a.HealthStatus), f.Health) },
		func(a Animal) bool { return query.EqualsFold(a.Species, f.Species) },
	)
}

// SortFields son los campos por los que se puede ordenar el listado.
var SortFields = query.Comparators[Animal]{
	"name":          func(a, b Animal) int { return cmp.Compare(a.Name, b.Name) },
	"species":       func(a, b Animal) int { return cmp.Compare(a.Species, b.Species) },
	"gender":        func(a, b Animal) int { return cmp.Compare(a.Gender, b.Gender) },
	"age":           func(a, b Animal) int { return cmp.Compare(a.Age, b.Age) },
	"health_status": func(a, b Animal) int { return cmp.Compare(a.HealthStatus, b.HealthStatus) },
	"location":      func(a, b Animal) int { return cmp.Compare(a.Location, b.Location) },
	"arrival_date":  func(a, b Animal) int { return a.ArrivalDate.Compare(b.ArrivalDate) },
}

// Patch: punteros para PATCH real, nil = no tocar.
type Patch struct {
	Name                    *string
	Species                 *string
	Gender                  *Gender
	Age                     *int
	HealthStatus            *HealthStatus
	Location                *string
	DietRequirements        *string
	MedicalHistory          *[]MedicalRecord
	ArrivalDate             *time.Time
	ImageURL                *string
	Description             *string
	SpecialCareInstructions *string
}

func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrInvalidInput
	}
	if p.Species != nil && strings.TrimSpace(*p.Species) == "" {
		return ErrInvalidInput
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return ErrInvalidInput
	}
	if p.Age != nil && *p.Age < 0 {
		return ErrInvalidInput
	}
	if p.HealthStatus != nil && !p.HealthStatus.Valid() {
		return ErrInvalidInput
	}
	if p.ArrivalDate != nil && p.ArrivalDate.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

// Apply devuelve a con los campos del patch aplicados; el resto queda igual.
func (p Patch) Apply(a Animal) Animal {
	a = a.Clone()
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Species != nil {
		a.Species = strings.TrimSpace(*p.Species)
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.HealthStatus != nil {
		a.HealthStatus = *p.HealthStatus
	}
	if p.Location != nil {
		a.Location = strings.TrimSpace(*p.Location)
	}
	if p.DietRequirements != nil {
		a.DietRequirements = strings.TrimSpace(*p.DietRequirements)
	}
	if p.MedicalHistory != nil {
		h := make([]MedicalRecord, len(*p.MedicalHistory))
		copy(h, *p.MedicalHistory)
		a.MedicalHistory = h
	}
	if p.ArrivalDate != nil {
		a.ArrivalDate = *p.ArrivalDate
	}
	if p.ImageURL != nil {
		a.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.Description != nil {
		a.Description = strings.TrimSpace(*p.Description)
	}
	if p.SpecialCareInstructions != nil {
		a.SpecialCareInstructions = strings.TrimSpace(*p.SpecialCareInstructions)
	}
	return a
}

func normalize(a Animal) Animal {
	a.ID = strings.TrimSpace(a.ID)
	a.Name = strings.TrimSpace(a.Name)
	a.Species = strings.TrimSpace(a.Species)
	a.Location = strings.TrimSpace(a.Location)
	a.DietRequirements = strings.TrimSpace(a.DietRequirements)
	a.ImageURL = strings.TrimSpace(a.ImageURL)
	a.Description = strings.TrimSpace(a.Description)
	a.SpecialCareInstructions = strings.TrimSpace(a.SpecialCareInstructions)
	if a.Gender == "" {
		a.Gender = GenderUnknown
	}
	a = a.Clone()
	if a.MedicalHistory == nil {
		a.MedicalHistory = []MedicalRecord{}
	}
	return a
}

func validate(a Animal) error {
	if a.Name == "" || a.Species == "" {
		return ErrInvalidInput
	}
	if !a.Gender.Valid() || !a.HealthStatus.Valid() {
		return ErrInvalidInput
	}
	if a.Age < 0 {
		return ErrInvalidInput
	}
	if a.ArrivalDate.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

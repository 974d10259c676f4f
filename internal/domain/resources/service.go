package resources

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

func (s *Service) Add(ctx context.Context, r Resource) (Resource, error) {
	r = normalize(r)
	if err := validate(r); err != nil {
		return Resource{}, err
	}

	if r.ID != "" {
		if err := s.repo.Create(ctx, r); err != nil {
			return Resource{}, err
		}
		return r, nil
	}

	for i := 0; i < maxIDAttempts; i++ {
		r.ID = s.newID()
		err := s.repo.Create(ctx, r)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, ErrAlreadyExists) {
			return Resource{}, err
		}
	}
	return Resource{}, fmt.Errorf("generate resource id: %w", ErrAlreadyExists)
}

func (s *Service) GetByID(ctx context.Context, id string) (Resource, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Resource{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All(ctx context.Context) ([]Resource, error) {
	return s.repo.List(ctx)
}

// Update es no-op (found=false) si el id no existe.
// Status y Quantity se actualizan de forma independiente.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Resource, bool, error) {
	if err := p.Validate(); err != nil {
		return Resource{}, false, err
	}
	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), p.Apply)
	if errors.Is(err, ErrNotFound) {
		return Resource{}, false, nil
	}
	if err != nil {
		return Resource{}, false, err
	}
	return updated, true, nil
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

// ListFilter: Search busca en nombre/categoría; Category y Status son exactos.
type ListFilter struct {
	Search   string
	Category string
	Status   string
}

func (s *Service) List(ctx context.Context, f ListFilter, p query.Params) (query.Page[Resource], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return query.Page[Resource]{}, err
	}
	sorted, err := query.Sort(Filter(items, f), SortFields, p.Sort, p.Order)
	if err != nil {
		return query.Page[Resource]{}, err
	}
	return query.Paginate(sorted, p.Page, p.PageSize), nil
}

func Filter(items []Resource, f ListFilter) []Resource {
	return query.Filter(items,
		func(r Resource) bool { return query.MatchesAny(f.Search, r.Name, string(r.Category)) },
		func(r Resource) bool { return query.EqualsFold(string(r.Category), f.Category) },
		func(r Resource) bool { return query.EqualsFold(string(r.Status), f.Status) },
	)
}

var SortFields = query.Comparators[Resource]{
	"name":           func(a, b Resource) int { return cmp.Compare(a.Name, b.Name) },
	"category":       func(a, b Resource) int { return cmp.Compare(a.Category, b.Category) },
	"quantity":       func(a, b Resource) int { return cmp.Compare(a.Quantity, b.Quantity) },
	"unit":           func(a, b Resource) int { return cmp.Compare(a.Unit, b.Unit) },
	"status":         func(a, b Resource) int { return cmp.Compare(a.Status, b.Status) },
	"last_restocked": func(a, b Resource) int { return a.LastRestocked.Compare(b.LastRestocked) },
}

// Patch para PATCH parcial. ExpirationDate usa ClearExpiration para poder limpiarla.
type Patch struct {
	Name            *string
	Category        *Category
	Quantity        *int
	Unit            *Unit
	Status          *Status
	LastRestocked   *time.Time
	ExpirationDate  *time.Time
	ClearExpiration bool
	Supplier        *string
}

func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrInvalidInput
	}
	if p.Category != nil && !p.Category.Valid() {
		return ErrInvalidInput
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return ErrInvalidInput
	}
	if p.Unit != nil && !p.Unit.Valid() {
		return ErrInvalidInput
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidInput
	}
	if p.LastRestocked != nil && p.LastRestocked.IsZero() {
		return ErrInvalidInput
	}
	if p.ClearExpiration && p.ExpirationDate != nil {
		return ErrInvalidInput
	}
	return nil
}

func (p Patch) Apply(r Resource) Resource {
	r = r.Clone()
	if p.Name != nil {
		r.Name = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Quantity != nil {
		r.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		r.Unit = *p.Unit
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.LastRestocked != nil {
		r.LastRestocked = *p.LastRestocked
	}
	if p.ExpirationDate != nil {
		t := *p.ExpirationDate
		r.ExpirationDate = &t
	}
	if p.ClearExpiration {
		r.ExpirationDate = nil
	}
	if p.Supplier != nil {
		r.Supplier = strings.TrimSpace(*p.Supplier)
	}
	return r
}

func normalize(r Resource) Resource {
	r = r.Clone()
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Supplier = strings.TrimSpace(r.Supplier)
	return r
}

func validate(r Resource) error {
	if r.Name == "" {
		return ErrInvalidInput
	}
	if !r.Category.Valid() || !r.Unit.Valid() || !r.Status.Valid() {
		return ErrInvalidInput
	}
	if r.Quantity < 0 {
		return ErrInvalidInput
	}
	if r.LastRestocked.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

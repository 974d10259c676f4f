package reports

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

// placeholderFiles se usan cuando el reporte no tiene archivo propio.
// No hay generación real de reportes.
var placeholderFiles = map[Category]string{
	CategoryHealth:    "https://www.africau.edu/images/default/sample.pdf",
	CategoryInventory: "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
	CategoryFinancial: "https://www.adobe.com/support/products/enterprise/knowledgecenter/media/c4611_sample_explain.pdf",
	CategoryIncident:  "https://file-examples.com/storage/fe8c7eef0c6364f6c9504cc/2017/10/file-sample_150kB.pdf",
}

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

func (s *Service) Add(ctx context.Context, r Report) (Report, error) {
	r = normalize(r)
	if err := validate(r); err != nil {
		return Report{}, err
	}

	if r.ID != "" {
		if err := s.repo.Create(ctx, r); err != nil {
			return Report{}, err
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
			return Report{}, err
		}
	}
	return Report{}, fmt.Errorf("generate report id: %w", ErrAlreadyExists)
}

func (s *Service) GetByID(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All(ctx context.Context) ([]Report, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Report, bool, error) {
	if err := p.Validate(); err != nil {
		return Report{}, false, err
	}
	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), p.Apply)
	if errors.Is(err, ErrNotFound) {
		return Report{}, false, nil
	}
	if err != nil {
		return Report{}, false, err
	}
	return updated, true, nil
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}

// FileURL devuelve el archivo del reporte, o el placeholder de su categoría
// (placeholder = true).
func (s *Service) FileURL(ctx context.Context, id string) (url string, placeholder bool, err error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	return ResolveFileURL(r), r.FileURL == "", nil
}

func ResolveFileURL(r Report) string {
	if r.FileURL != "" {
		return r.FileURL
	}
	return placeholderFiles[r.Category]
}

// ListFilter: Search busca en título/categoría/autor; Category es exacto.
type ListFilter struct {
	Search   string
	Category string
}

func (s *Service) List(ctx context.Context, f ListFilter, p query.Params) (query.Page[Report], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return query.Page[Report]{}, err
	}
	sorted, err := query.Sort(Filter(items, f), SortFields, p.Sort, p.Order)
	if err != nil {
		return query.Page[Report]{}, err
	}
	return query.Paginate(sorted, p.Page, p.PageSize), nil
}

func Filter(items []Report, f ListFilter) []Report {
	return query.Filter(items,
		func(r Report) bool { return query.MatchesAny(f.Search, r.Title, string(r.Category), r.Author) },
		func(r Report) bool { return query.EqualsFold(string(r.Category), f.Category) },
	)
}

var SortFields = query.Comparators[Report]{
	"title":    func(a, b Report) int { return cmp.Compare(a.Title, b.Title) },
	"category": func(a, b Report) int { return cmp.Compare(a.Category, b.Category) },
	"date":     func(a, b Report) int { return a.Date.Compare(b.Date) },
	"author":   func(a, b Report) int { return cmp.Compare(a.Author, b.Author) },
}

type Patch struct {
	Title    *string
	Category *Category
	Date     *time.Time
	Author   *string
	FileURL  *string
	Content  *string
}

func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrInvalidInput
	}
	if p.Author != nil && strings.TrimSpace(*p.Author) == "" {
		return ErrInvalidInput
	}
	if p.Category != nil && !p.Category.Valid() {
		return ErrInvalidInput
	}
	if p.Date != nil && p.Date.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

func (p Patch) Apply(r Report) Report {
	if p.Title != nil {
		r.Title = strings.TrimSpace(*p.Title)
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Author != nil {
		r.Author = strings.TrimSpace(*p.Author)
	}
	if p.FileURL != nil {
		r.FileURL = strings.TrimSpace(*p.FileURL)
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	return r
}

func normalize(r Report) Report {
	r.ID = strings.TrimSpace(r.ID)
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.FileURL = strings.TrimSpace(r.FileURL)
	return r
}

func validate(r Report) error {
	if r.Title == "" || r.Author == "" {
		return ErrInvalidInput
	}
	if !r.Category.Valid() {
		return ErrInvalidInput
	}
	if r.Date.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

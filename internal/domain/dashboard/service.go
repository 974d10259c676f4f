package dashboard

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"zoo-dashboard/internal/domain/animals"
	"zoo-dashboard/internal/domain/reports"
	"zoo-dashboard/internal/domain/resources"
)

// Fuentes de lectura. Los services de cada dominio las cumplen.
type AnimalSource interface {
	All(ctx context.Context) ([]animals.Animal, error)
}

type ResourceSource interface {
	All(ctx context.Context) ([]resources.Resource, error)
}

type ReportSource interface {
	All(ctx context.Context) ([]reports.Report, error)
}

// Service recalcula todo en cada llamada a partir del snapshot actual.
type Service struct {
	animals   AnimalSource
	resources ResourceSource
	reports   ReportSource

	now func() time.Time

	// *rand.Rand no es seguro para uso concurrente.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewService: si rng es nil usa una fuente sembrada con la hora actual.
func NewService(as AnimalSource, rs ResourceSource, reps ReportSource, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	return &Service{
		animals:   as,
		resources: rs,
		reports:   reps,
		now:       time.Now,
		rng:       rng,
	}
}

func (s *Service) Health(ctx context.Context) (HealthCounts, []NameValue, error) {
	items, err := s.animals.All(ctx)
	if err != nil {
		return HealthCounts{}, nil, err
	}
	c := CountHealth(items)
	return c, HealthDistribution(c), nil
}

func (s *Service) Species(ctx context.Context) ([]NameValue, error) {
	items, err := s.animals.All(ctx)
	if err != nil {
		return nil, err
	}
	return SpeciesCounts(items), nil
}

func (s *Service) ResourceStatus(ctx context.Context) (ResourceStatusCounts, error) {
	items, err := s.resources.All(ctx)
	if err != nil {
		return ResourceStatusCounts{}, err
	}
	return CountResourceStatus(items), nil
}

func (s *Service) ResourceCategories(ctx context.Context) ([]NameValue, error) {
	items, err := s.resources.All(ctx)
	if err != nil {
		return nil, err
	}
	return ResourceCategoryCounts(items), nil
}

func (s *Service) PopulationTrend() []PopulationPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PopulationTrend(s.now(), s.rng)
}

func (s *Service) ResourceAvailability() []AvailabilityPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ResourceAvailability(s.now(), s.rng)
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	as, err := s.animals.All(ctx)
	if err != nil {
		return Overview{}, err
	}
	rs, err := s.resources.All(ctx)
	if err != nil {
		return Overview{}, err
	}
	reps, err := s.reports.All(ctx)
	if err != nil {
		return Overview{}, err
	}
	return BuildOverview(s.now(), as, rs, reps), nil
}

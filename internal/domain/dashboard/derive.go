package dashboard

import (
	"time"

	"zoo-dashboard/internal/domain/animals"
	"zoo-dashboard/internal/domain/reports"
	"zoo-dashboard/internal/domain/resources"
)

// SeriesLength es la cantidad de meses de las series sintéticas.
const SeriesLength = 6

// RecentWindow define qué cuenta como incidente reciente.
const RecentWindow = 7 * 24 * time.Hour

// IntN devuelve un entero en [0, n). *rand.Rand de math/rand/v2 lo cumple.
type IntN interface {
	IntN(n int) int
}

func CountHealth(items []animals.Animal) HealthCounts {
	var c HealthCounts
	for _, a := range items {
		switch a.HealthStatus {
		case animals.HealthHealthy:
			c.Healthy++
		case animals.HealthConcerning:
			c.Concerning++
		case animals.HealthCritical:
			c.Critical++
		}
	}
	return c
}

// HealthDistribution siempre devuelve Healthy, Concerning, Critical en ese orden.
func HealthDistribution(c HealthCounts) []NameValue {
	return []NameValue{
		{Name: string(animals.HealthHealthy), Value: c.Healthy},
		{Name: string(animals.HealthConcerning), Value: c.Concerning},
		{Name: string(animals.HealthCritical), Value: c.Critical},
	}
}

// SpeciesCounts agrupa por especie, en orden de primera aparición.
func SpeciesCounts(items []animals.Animal) []NameValue {
	out := make([]NameValue, 0)
	idx := map[string]int{}
	for _, a := range items {
		i, ok := idx[a.Species]
		if !ok {
			idx[a.Species] = len(out)
			out = append(out, NameValue{Name: a.Species, Value: 1})
			continue
		}
		out[i].Value++
	}
	return out
}

func CountResourceStatus(items []resources.Resource) ResourceStatusCounts {
	var c ResourceStatusCounts
	for _, r := range items {
		switch r.Status {
		case resources.StatusAvailable:
			c.Available++
		case resources.StatusLowStock:
			c.LowStock++
		case resources.StatusOutOfStock:
			c.OutOfStock++
		}
	}
	return c
}

// ResourceCategoryCounts incluye todas las categorías, aunque tengan 0.
func ResourceCategoryCounts(items []resources.Resource) []NameValue {
	counts := map[resources.Category]int{}
	for _, r := range items {
		counts[r.Category]++
	}
	out := make([]NameValue, 0, len(resources.Categories))
	for _, c := range resources.Categories {
		out = append(out, NameValue{Name: string(c), Value: counts[c]})
	}
	return out
}

// PopulationTrend genera 6 meses de datos de población, del más antiguo al actual.
// No es histórico real.
func PopulationTrend(now time.Time, rng IntN) []PopulationPoint {
	out := make([]PopulationPoint, 0, SeriesLength)
	for i := SeriesLength - 1; i >= 0; i-- {
		mammals := 30 + rng.IntN(10) + i
		birds := 18 + rng.IntN(8) + i
		reptiles := 12 + rng.IntN(6) + i
		out = append(out, PopulationPoint{
			Date:     monthLabel(now, i),
			Mammals:  mammals,
			Birds:    birds,
			Reptiles: reptiles,
			Total:    mammals + birds + reptiles,
		})
	}
	return out
}

// ResourceAvailability genera 6 meses de porcentajes con tendencia creciente, piso 50.
func ResourceAvailability(now time.Time, rng IntN) []AvailabilityPoint {
	out := make([]AvailabilityPoint, 0, SeriesLength)
	for i := SeriesLength - 1; i >= 0; i-- {
		out = append(out, AvailabilityPoint{
			Date:      monthLabel(now, i),
			Food:      max(50, 85-i*5-rng.IntN(10)),
			Medical:   max(50, 90-i*5-rng.IntN(10)),
			Equipment: max(50, 95-i*5-rng.IntN(10)),
		})
	}
	return out
}

// BuildOverview calcula las tarjetas. Incidentes recientes: categoría Incident
// con fecha dentro de RecentWindow hasta now.
func BuildOverview(now time.Time, as []animals.Animal, rs []resources.Resource, reps []reports.Report) Overview {
	hc := CountHealth(as)
	sc := CountResourceStatus(rs)

	cutoff := now.Add(-RecentWindow)
	incidents := 0
	for _, r := range reps {
		if r.Category != reports.CategoryIncident {
			continue
		}
		if !r.Date.Before(cutoff) && !r.Date.After(now) {
			incidents++
		}
	}

	return Overview{
		TotalAnimals:       len(as),
		HealthyAnimals:     hc.Healthy,
		ConcerningAnimals:  hc.Concerning,
		CriticalAnimals:    hc.Critical,
		TotalResources:     len(rs),
		AvailableResources: sc.Available,
		LowStockResources:  sc.LowStock,
		RecentIncidents:    incidents,
	}
}

// monthLabel: abreviatura de 3 letras del mes que está monthsBack antes de now.
func monthLabel(now time.Time, monthsBack int) string {
	m := time.Date(now.Year(), now.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, now.Location())
	return m.Month().String()[:3]
}

package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"zoo-dashboard/internal/domain/animals"
	"zoo-dashboard/internal/domain/reports"
	"zoo-dashboard/internal/domain/resources"
)

// Config del generador. Mismo Seed + Now => mismo Fixture.
type Config struct {
	Seed      uint64
	Animals   int
	Resources int
	Reports   int

	// Referencia para fechas relativas. Zero => hoy (UTC, truncado al día).
	Now time.Time
}

// Fixture es el set de datos inicial, en orden de inserción.
type Fixture struct {
	Animals   []animals.Animal
	Resources []resources.Resource
	Reports   []reports.Report
}

type speciesInfo struct {
	name     string
	location string
	diet     string
	image    string
}

var speciesPool = []speciesInfo{
	{"African Lion", "Savanna Exhibit", "Raw meat, 5-7 kg daily", "https://images.unsplash.com/photo-1546182990-dffeafbe841d"},
	{"Giraffe", "Savanna Exhibit", "Acacia leaves, hay, pellets", "https://images.unsplash.com/photo-1547721064-da6cfb341d50"},
	{"African Elephant", "Elephant Sanctuary", "Hay, vegetables, fruit, 100 kg daily", "https://images.unsplash.com/photo-1557050543-4d5f4e07ef46"},
	{"Red Panda", "Asian Forest", "Bamboo, fruit, insects", "https://images.unsplash.com/photo-1590418606746-018840f9cd0f"},
	{"Bald Eagle", "Raptor Aviary", "Fish, small mammals", "https://images.unsplash.com/photo-1611689342806-0863700ce1e4"},
	{"Emperor Penguin", "Polar Zone", "Fish, krill, squid", "https://images.unsplash.com/photo-1551986782-d0169b3f8fa7"},
	{"Scarlet Macaw", "Tropical Aviary", "Seeds, nuts, fruit", "https://images.unsplash.com/photo-1552728089-57bdde30beb3"},
	{"Komodo Dragon", "Reptile House", "Whole prey, weekly", "https://images.unsplash.com/photo-1575550959106-5a7defe28b56"},
	{"Green Sea Turtle", "Aquarium", "Seagrass, algae", "https://images.unsplash.com/photo-1591025207163-942350e47db2"},
	{"Nile Crocodile", "Reptile House", "Fish, poultry, twice weekly", "https://images.unsplash.com/photo-1610647752706-3bb12232b3ab"},
}

var animalNames = []string{
	"Leo", "Mia", "Rex", "Nala", "Kibo", "Zuri", "Tembo", "Luna", "Max", "Kiki",
	"Bruno", "Sasha", "Ozzy", "Pip", "Ravi", "Juno", "Milo", "Asha", "Tiko", "Bella",
}

var careNotes = []string{
	"Monitor weight weekly.",
	"Requires shaded area during midday.",
	"Keep away from loud maintenance work.",
	"Administer joint supplement with morning feed.",
}

type resourceTemplate struct {
	name     string
	category resources.Category
	unit     resources.Unit
	supplier string
	perishes bool
}

var resourcePool = []resourceTemplate{
	{"Hay", resources.CategoryFood, resources.UnitKilogram, "Green Valley Farms", true},
	{"Raw Meat", resources.CategoryFood, resources.UnitKilogram, "Premium Meats Co.", true},
	{"Fresh Fish", resources.CategoryFood, resources.UnitKilogram, "Ocean Catch Ltd.", true},
	{"Fruit Mix", resources.CategoryFood, resources.UnitBoxes, "Tropical Produce", true},
	{"Bird Seed", resources.CategoryFood, resources.UnitPacks, "Avian Supply", true},
	{"Antibiotics", resources.CategoryMedical, resources.UnitBoxes, "VetPharm", true},
	{"Bandages", resources.CategoryMedical, resources.UnitPacks, "MedSupply Inc.", false},
	{"Saline Solution", resources.CategoryMedical, resources.UnitLiter, "VetPharm", true},
	{"Vitamin Drops", resources.CategoryMedical, resources.UnitMilli, "NutriVet", true},
	{"Enrichment Toys", resources.CategoryEquipment, resources.UnitUnits, "ZooGear", false},
	{"Cleaning Supplies", resources.CategoryEquipment, resources.UnitBoxes, "CleanPro", false},
	{"Heat Lamps", resources.CategoryEquipment, resources.UnitUnits, "ReptiTech", false},
}

type reportTemplate struct {
	title    string
	category reports.Category
	content  string
}

var reportPool = []reportTemplate{
	{"Monthly Health Assessment", reports.CategoryHealth, "Routine checks completed for all exhibits."},
	{"Vaccination Schedule Update", reports.CategoryHealth, "Annual vaccinations scheduled for mammals."},
	{"Quarterly Inventory Audit", reports.CategoryInventory, "Stock levels reconciled with supplier invoices."},
	{"Feed Consumption Report", reports.CategoryInventory, "Feed usage within expected ranges."},
	{"Annual Budget Review", reports.CategoryFinancial, "Operating costs compared against budget."},
	{"Donation Summary", reports.CategoryFinancial, "Summary of donations received this quarter."},
	{"Enclosure Breach Incident", reports.CategoryIncident, "Fence damage found and repaired; no animals escaped."},
	{"Visitor Injury Report", reports.CategoryIncident, "Minor injury near the aviary; first aid given."},
}

var authors = []string{"Dr. Sarah Chen", "Dr. Marcus Webb", "Ana Torres", "James Okafor", "Priya Nair"}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generate produce datos sintéticos válidos: ids únicos de 8 caracteres y enums válidos.
func Generate(cfg Config) Fixture {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	g := &generator{
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		today: today,
		used:  map[string]struct{}{},
	}

	f := Fixture{
		Animals:   make([]animals.Animal, 0, max(0, cfg.Animals)),
		Resources: make([]resources.Resource, 0, max(0, cfg.Resources)),
		Reports:   make([]reports.Report, 0, max(0, cfg.Reports)),
	}
	for i := 0; i < cfg.Animals; i++ {
		f.Animals = append(f.Animals, g.animal(i))
	}
	for i := 0; i < cfg.Resources; i++ {
		f.Resources = append(f.Resources, g.resource(i))
	}
	for i := 0; i < cfg.Reports; i++ {
		f.Reports = append(f.Reports, g.report(i))
	}
	return f
}

type generator struct {
	rng   *rand.Rand
	today time.Time
	used  map[string]struct{}
}

func (g *generator) id() string {
	for {
		b := make([]byte, 8)
		for i := range b {
			b[i] = idAlphabet[g.rng.IntN(len(idAlphabet))]
		}
		id := string(b)
		if _, dup := g.used[id]; !dup {
			g.used[id] = struct{}{}
			return id
		}
	}
}

func (g *generator) daysAgo(lo, hi int) time.Time {
	return g.today.AddDate(0, 0, -(lo + g.rng.IntN(hi-lo+1)))
}

func pick[T any](g *generator, pool []T) T {
	return pool[g.rng.IntN(len(pool))]
}

// Distribución de salud sesgada a Healthy, como un zoológico real.
func (g *generator) health() animals.HealthStatus {
	switch n := g.rng.IntN(10); {
	case n < 7:
		return animals.HealthHealthy
	case n < 9:
		return animals.HealthConcerning
	default:
		return animals.HealthCritical
	}
}

func (g *generator) animal(i int) animals.Animal {
	sp := pick(g, speciesPool)
	gender := animals.GenderMale
	if g.rng.IntN(2) == 0 {
		gender = animals.GenderFemale
	}

	name := animalNames[i%len(animalNames)]
	if i >= len(animalNames) {
		name = fmt.Sprintf("%s %d", name, i/len(animalNames)+1)
	}

	arrival := g.daysAgo(30, 365*8)
	history := make([]animals.MedicalRecord, 0, 3)
	for n := g.rng.IntN(4); n > 0; n-- {
		history = append(history, animals.MedicalRecord{
			Date:  g.daysAgo(1, 365),
			Type:  pick(g, []string{"Checkup", "Vaccination", "Treatment", "Dental"}),
			Notes: "Routine procedure, no complications.",
		})
	}

	a := animals.Animal{
		ID:               g.id(),
		Name:             name,
		Species:          sp.name,
		Gender:           gender,
		Age:              1 + g.rng.IntN(20),
		HealthStatus:     g.health(),
		Location:         sp.location,
		DietRequirements: sp.diet,
		MedicalHistory:   history,
		ArrivalDate:      arrival,
		ImageURL:         sp.image,
		Description:      fmt.Sprintf("%s living in the %s.", sp.name, sp.location),
	}
	if a.HealthStatus != animals.HealthHealthy {
		a.SpecialCareInstructions = pick(g, careNotes)
	}
	return a
}

func (g *generator) resource(i int) resources.Resource {
	t := resourcePool[i%len(resourcePool)]

	qty := g.rng.IntN(200)
	status := resources.StatusAvailable
	switch {
	case qty == 0:
		status = resources.StatusOutOfStock
	case qty < 20:
		status = resources.StatusLowStock
	}

	r := resources.Resource{
		ID:            g.id(),
		Name:          t.name,
		Category:      t.category,
		Quantity:      qty,
		Unit:          t.unit,
		Status:        status,
		LastRestocked: g.daysAgo(0, 60),
		Supplier:      t.supplier,
	}
	if t.perishes {
		exp := g.today.AddDate(0, 0, 7+g.rng.IntN(365))
		r.ExpirationDate = &exp
	}
	return r
}

func (g *generator) report(i int) reports.Report {
	t := reportPool[i%len(reportPool)]
	return reports.Report{
		ID:       g.id(),
		Title:    t.title,
		Category: t.category,
		Date:     g.daysAgo(0, 90),
		Author:   pick(g, authors),
		Content:  t.content,
	}
}

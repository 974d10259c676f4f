package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"zoo-dashboard/internal/domain/animals"
	"zoo-dashboard/internal/domain/reports"
	"zoo-dashboard/internal/domain/resources"
)

// Destinos de carga. Los services de cada dominio los cumplen.
type AnimalAdder interface {
	Add(ctx context.Context, a animals.Animal) (animals.Animal, error)
}

type ResourceAdder interface {
	Add(ctx context.Context, r resources.Resource) (resources.Resource, error)
}

type ReportAdder interface {
	Add(ctx context.Context, r reports.Report) (reports.Report, error)
}

type Targets struct {
	Animals   AnimalAdder
	Resources ResourceAdder
	Reports   ReportAdder
}

// Load inserta el fixture en orden. Corta en el primer error.
func Load(ctx context.Context, f Fixture, t Targets) error {
	for _, a := range f.Animals {
		if _, err := t.Animals.Add(ctx, a); err != nil {
			return fmt.Errorf("seed animal %s: %w", a.ID, err)
		}
	}
	for _, r := range f.Resources {
		if _, err := t.Resources.Add(ctx, r); err != nil {
			return fmt.Errorf("seed resource %s: %w", r.ID, err)
		}
	}
	for _, r := range f.Reports {
		if _, err := t.Reports.Add(ctx, r); err != nil {
			return fmt.Errorf("seed report %s: %w", r.ID, err)
		}
	}
	return nil
}

const dateLayout = "2006-01-02"

type medicalRecordDoc struct {
	Date      string `json:"date" yaml:"date"`
	Type      string `json:"type" yaml:"type"`
	Notes     string `json:"notes" yaml:"notes"`
	Treatment string `json:"treatment,omitempty" yaml:"treatment,omitempty"`
}

type animalDoc struct {
	ID                      string             `json:"id" yaml:"id"`
	Name                    string             `json:"name" yaml:"name"`
	Species                 string             `json:"species" yaml:"species"`
	Gender                  string             `json:"gender" yaml:"gender"`
	Age                     int                `json:"age" yaml:"age"`
	HealthStatus            string             `json:"health_status" yaml:"health_status"`
	Location                string             `json:"location" yaml:"location"`
	DietRequirements        string             `json:"diet_requirements" yaml:"diet_requirements"`
	MedicalHistory          []medicalRecordDoc `json:"medical_history" yaml:"medical_history"`
	ArrivalDate             string             `json:"arrival_date" yaml:"arrival_date"`
	ImageURL                string             `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Description             string             `json:"description,omitempty" yaml:"description,omitempty"`
	SpecialCareInstructions string             `json:"special_care_instructions,omitempty" yaml:"special_care_instructions,omitempty"`
}

type resourceDoc struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Category       string `json:"category" yaml:"category"`
	Quantity       int    `json:"quantity" yaml:"quantity"`
	Unit           string `json:"unit" yaml:"unit"`
	Status         string `json:"status" yaml:"status"`
	LastRestocked  string `json:"last_restocked" yaml:"last_restocked"`
	ExpirationDate string `json:"expiration_date,omitempty" yaml:"expiration_date,omitempty"`
	Supplier       string `json:"supplier,omitempty" yaml:"supplier,omitempty"`
}

type reportDoc struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Date     string `json:"date" yaml:"date"`
	Author   string `json:"author" yaml:"author"`
	FileURL  string `json:"file_url,omitempty" yaml:"file_url,omitempty"`
	Content  string `json:"content,omitempty" yaml:"content,omitempty"`
}

type fixtureDoc struct {
	Animals   []animalDoc   `json:"animals" yaml:"animals"`
	Resources []resourceDoc `json:"resources" yaml:"resources"`
	Reports   []reportDoc   `json:"reports" yaml:"reports"`
}

// Dump escribe el fixture como "yaml" o "json".
func Dump(w io.Writer, f Fixture, format string) error {
	doc := toDoc(f)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func toDoc(f Fixture) fixtureDoc {
	doc := fixtureDoc{
		Animals:   make([]animalDoc, 0, len(f.Animals)),
		Resources: make([]resourceDoc, 0, len(f.Resources)),
		Reports:   make([]reportDoc, 0, len(f.Reports)),
	}

	for _, a := range f.Animals {
		hist := make([]medicalRecordDoc, 0, len(a.MedicalHistory))
		for _, m := range a.MedicalHistory {
			hist = append(hist, medicalRecordDoc{
				Date:      m.Date.Format(dateLayout),
				Type:      m.Type,
				Notes:     m.Notes,
				Treatment: m.Treatment,
			})
		}
		doc.Animals = append(doc.Animals, animalDoc{
			ID:                      a.ID,
			Name:                    a.Name,
			Species:                 a.Species,
			Gender:                  string(a.Gender),
			Age:                     a.Age,
			HealthStatus:            string(a.HealthStatus),
			Location:                a.Location,
			DietRequirements:        a.DietRequirements,
			MedicalHistory:          hist,
			ArrivalDate:             a.ArrivalDate.Format(dateLayout),
			ImageURL:                a.ImageURL,
			Description:             a.Description,
			SpecialCareInstructions: a.SpecialCareInstructions,
		})
	}

	for _, r := range f.Resources {
		d := resourceDoc{
			ID:            r.ID,
			Name:          r.Name,
			Category:      string(r.Category),
			Quantity:      r.Quantity,
			Unit:          string(r.Unit),
			Status:        string(r.Status),
			LastRestocked: r.LastRestocked.Format(dateLayout),
			Supplier:      r.Supplier,
		}
		if r.ExpirationDate != nil {
			d.ExpirationDate = r.ExpirationDate.Format(dateLayout)
		}
		doc.Resources = append(doc.Resources, d)
	}

	for _, r := range f.Reports {
		doc.Reports = append(doc.Reports, reportDoc{
			ID:       r.ID,
			Title:    r.Title,
			Category: string(r.Category),
			Date:     r.Date.Format(dateLayout),
			Author:   r.Author,
			FileURL:  r.FileURL,
			Content:  r.Content,
		})
	}

	return doc
}

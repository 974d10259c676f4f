package reports

import "time"

// Category del reporte.
// @Enum Health, Inventory, Financial, Incident
type Category string

const (
	CategoryHealth    Category = "Health"
	CategoryInventory Category = "Inventory"
	CategoryFinancial Category = "Financial"
	CategoryIncident  Category = "Incident"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryHealth, CategoryInventory, CategoryFinancial, CategoryIncident:
		return true
	}
	return false
}

type Report struct {
	ID string

	Title    string
	Category Category
	Date     time.Time
	Author   string

	FileURL string // opcional
	Content string // opcional
}

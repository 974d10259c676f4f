package resources

import "time"

// Category del recurso.
// @Enum Food, Medical, Equipment
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryMedical   Category = "Medical"
	CategoryEquipment Category = "Equipment"
)

var Categories = []Category{CategoryFood, CategoryMedical, CategoryEquipment}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryMedical, CategoryEquipment:
		return true
	}
	return false
}

// Unit de medida.
// @Enum kg, g, l, ml, units, boxes, packs
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
	UnitLiter    Unit = "l"
	UnitMilli    Unit = "ml"
	UnitUnits    Unit = "units"
	UnitBoxes    Unit = "boxes"
	UnitPacks    Unit = "packs"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitMilli, UnitUnits, UnitBoxes, UnitPacks:
		return true
	}
	return false
}

// Status de disponibilidad. Lo fija el operador; no se deriva de Quantity.
// @Enum Available, Low Stock, Out of Stock
type Status string

const (
	StatusAvailable  Status = "Available"
	StatusLowStock   Status = "Low Stock"
	StatusOutOfStock Status = "Out of Stock"
)

var Statuses = []Status{StatusAvailable, StatusLowStock, StatusOutOfStock}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// Resource es un ítem de inventario.
type Resource struct {
	ID string

	Name     string
	Category Category
	Quantity int
	Unit     Unit
	Status   Status

	LastRestocked  time.Time
	ExpirationDate *time.Time // opcional
	Supplier       string     // opcional
}

// Clone copia ExpirationDate para no compartir el puntero.
func (r Resource) Clone() Resource {
	if r.ExpirationDate != nil {
		t := *r.ExpirationDate
		r.ExpirationDate = &t
	}
	return r
}

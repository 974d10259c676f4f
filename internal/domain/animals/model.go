package animals

import "time"

// Gender del animal.
// @Enum Male, Female, Unknown
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

// HealthStatus del animal.
// @Enum Healthy, Concerning, Critical
type HealthStatus string

const (
	HealthHealthy    HealthStatus = "Healthy"
	HealthConcerning HealthStatus = "Concerning"
	HealthCritical   HealthStatus = "Critical"
)

// HealthStatuses en el orden en que se muestran en el dashboard.
var HealthStatuses = []HealthStatus{HealthHealthy, HealthConcerning, HealthCritical}

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthHealthy, HealthConcerning, HealthCritical:
		return true
	}
	return false
}

// MedicalRecord es una entrada del historial médico. Sin orden más allá del de inserción.
type MedicalRecord struct {
	Date      time.Time
	Type      string
	Notes     string
	Treatment string // opcional
}

// Animal es un animal del zoológico.
type Animal struct {
	ID string

	Name    string
	Species string
	Gender  Gender
	Age     int

	HealthStatus     HealthStatus
	Location         string
	DietRequirements string
	MedicalHistory   []MedicalRecord

	ArrivalDate time.Time

	// opcionales
	ImageURL                string
	Description             string
	SpecialCareInstructions string
}

// Clone copia el historial para no compartir el backing array.
func (a Animal) Clone() Animal {
	if a.MedicalHistory != nil {
		h := make([]MedicalRecord, len(a.MedicalHistory))
		copy(h, a.MedicalHistory)
		a.MedicalHistory = h
	}
	return a
}

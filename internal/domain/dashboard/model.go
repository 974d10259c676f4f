package dashboard

// HealthCounts es el conteo de animales por estado de salud.
type HealthCounts struct {
	Healthy    int `json:"healthy"`
	Concerning int `json:"concerning"`
	Critical   int `json:"critical"`
}

// NameValue es un par para gráficos de torta/barras.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ResourceStatusCounts es el conteo de recursos por disponibilidad.
type ResourceStatusCounts struct {
	Available  int `json:"available"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// PopulationPoint es un bucket mensual de la serie sintética de población.
type PopulationPoint struct {
	Date     string `json:"date"`
	Mammals  int    `json:"mammals"`
	Birds    int    `json:"birds"`
	Reptiles int    `json:"reptiles"`
	Total    int    `json:"total"`
}

// AvailabilityPoint es un bucket mensual (porcentajes) de disponibilidad de recursos.
type AvailabilityPoint struct {
	Date      string `json:"date"`
	Food      int    `json:"food"`
	Medical   int    `json:"medical"`
	Equipment int    `json:"equipment"`
}

// Overview alimenta las tarjetas del dashboard.
type Overview struct {
	TotalAnimals       int `json:"total_animals"`
	HealthyAnimals     int `json:"healthy_animals"`
	ConcerningAnimals  int `json:"concerning_animals"`
	CriticalAnimals    int `json:"critical_animals"`
	TotalResources     int `json:"total_resources"`
	AvailableResources int `json:"available_resources"`
	LowStockResources  int `json:"low_stock_resources"`
	RecentIncidents    int `json:"recent_incidents"`
}

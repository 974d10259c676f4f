package main

// @title Zoo Dashboard API
// @version 1.0
// @description Backend del panel de administración del zoológico: animales, recursos, reportes, métricas del dashboard y sesión.
// @BasePath /
func main() {
	Execute()
}

package dto

// DashboardStatsResponse summarizes the coordinator's remisería at a glance.
type DashboardStatsResponse struct {
	ViajesHoy        int64 `json:"viajesHoy"`
	ViajesEnCurso    int64 `json:"viajesEnCurso"`
	ViajesSinAsignar int64 `json:"viajesSinAsignar"`
	ReservasActivas  int64 `json:"reservasActivas"`
}

// VehiculoTiempoRealResponse is the fleet snapshot row with a simulated
// position (real tracking hardware is out of scope).
type VehiculoTiempoRealResponse struct {
	VehiculoID string  `json:"vehiculoId"`
	Patente    string  `json:"patente"`
	Estado     string  `json:"estado"`
	Latitud    float64 `json:"latitud"`
	Longitud   float64 `json:"longitud"`
	Simulado   bool    `json:"simulado"`
}

// ChoferTiempoRealResponse mirrors the vehicle snapshot for drivers.
type ChoferTiempoRealResponse struct {
	ChoferID     string  `json:"choferId"`
	NumeroChofer string  `json:"numeroChofer"`
	Nombre       string  `json:"nombre"`
	Apellido     string  `json:"apellido"`
	Estado       string  `json:"estado"`
	Latitud      float64 `json:"latitud"`
	Longitud     float64 `json:"longitud"`
	Simulado     bool    `json:"simulado"`
}

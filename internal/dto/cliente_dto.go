package dto

import "time"

// RegisterClienteRequest creates a CLIENTE account from the customer-facing app.
type RegisterClienteRequest struct {
	Email           string    `json:"email"           validate:"required,email"`
	Password        string    `json:"password"        validate:"required,min=6"`
	Nombre          string    `json:"nombre"          validate:"required,min=2,max=100"`
	Apellido        string    `json:"apellido"        validate:"required,min=2,max=100"`
	DNI             string    `json:"dni"             validate:"required,min=6,max=15"`
	Telefono        string    `json:"telefono"        validate:"required,min=6,max=30"`
	Direccion       string    `json:"direccion"       validate:"omitempty,max=200"`
	FechaNacimiento time.Time `json:"fechaNacimiento" validate:"required"`
	Genero          *string   `json:"genero"          validate:"omitempty,oneof=MASCULINO FEMENINO OTRO"`
}

type ActualizarClienteRequest struct {
	Telefono  *string `json:"telefono"  validate:"omitempty,min=6,max=30"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Password  *string `json:"password"  validate:"omitempty,min=6"`
}

type ClienteResponse struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	DNI             string    `json:"dni"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	Direccion       string    `json:"direccion"`
	FechaNacimiento time.Time `json:"fechaNacimiento"`
	Genero          *string   `json:"genero"`
	Activo          bool      `json:"activo"`
}

// UbicacionResponse is the simulated live-tracking point for a viaje EN_CURSO.
type UbicacionResponse struct {
	ViajeID   string  `json:"viajeId"`
	Latitud   float64 `json:"latitud"`
	Longitud  float64 `json:"longitud"`
	Rumbo     float64 `json:"rumbo"`
	Simulado  bool    `json:"simulado"`
	Timestamp string  `json:"timestamp"`
}

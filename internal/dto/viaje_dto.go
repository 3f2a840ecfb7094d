package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SolicitarViajeRequest is the client booking request.
type SolicitarViajeRequest struct {
	Origen        string     `json:"origen"        validate:"required,max=200"`
	Destino       string     `json:"destino"       validate:"required,max=200"`
	FechaHora     *time.Time `json:"fechaHora"`
	Observaciones *string    `json:"observaciones" validate:"omitempty,max=500"`
}

// CrearViajeRequest is the coordinator-entered trip, carrying the denormalized
// client-contact snapshot for walk-in/phone customers.
type CrearViajeRequest struct {
	Origen          string     `json:"origen"          validate:"required,max=200"`
	Destino         string     `json:"destino"         validate:"required,max=200"`
	FechaHora       *time.Time `json:"fechaHora"`
	Observaciones   *string    `json:"observaciones"   validate:"omitempty,max=500"`
	Prioridad       *int       `json:"prioridad"       validate:"omitempty,min=1,max=5"`
	ClienteID       *string    `json:"clienteId"       validate:"omitempty,uuid"`
	ClienteNombre   *string    `json:"clienteNombre"   validate:"omitempty,max=100"`
	ClienteTelefono *string    `json:"clienteTelefono" validate:"omitempty,max=30"`
	ClienteEmail    *string    `json:"clienteEmail"    validate:"omitempty,email"`
}

type AsignarViajeRequest struct {
	ChoferID   string `json:"choferId"   validate:"required,uuid"`
	VehiculoID string `json:"vehiculoId" validate:"required,uuid"`
}

type CalcularPrecioRequest struct {
	Origen  string `json:"origen"  validate:"required,max=200"`
	Destino string `json:"destino" validate:"required,max=200"`
}

type PrecioResponse struct {
	Origen       string          `json:"origen"`
	Destino      string          `json:"destino"`
	DistanciaKm  float64         `json:"distanciaKm"`
	Precio       decimal.Decimal `json:"precio"`
	TarifaBase   decimal.Decimal `json:"tarifaBase"`
	TarifaPorKm  decimal.Decimal `json:"tarifaPorKm"`
}

type ViajeResponse struct {
	ID              string          `json:"id"`
	Origen          string          `json:"origen"`
	Destino         string          `json:"destino"`
	Precio          decimal.Decimal `json:"precio"`
	Fecha           time.Time       `json:"fecha"`
	Estado          string          `json:"estado"`
	Observaciones   *string         `json:"observaciones"`
	Prioridad       *int            `json:"prioridad"`
	ClienteID       *string         `json:"clienteId"`
	RemiseriaID     string          `json:"remiseriaId"`
	ChoferID        *string         `json:"choferId"`
	VehiculoID      *string         `json:"vehiculoId"`
	ClienteNombre   *string         `json:"clienteNombre"`
	ClienteTelefono *string         `json:"clienteTelefono"`
	ClienteEmail    *string         `json:"clienteEmail"`
}

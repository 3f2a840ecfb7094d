package dto

import "time"

// CrearReservaRequest creates a booking. PERIODICA requires fechaFin, horaFin
// and diasSemana (weekday numbers 0-6); the row stores the recurrence rule,
// occurrences are never materialized.
type CrearReservaRequest struct {
	ClienteNombre   string     `json:"clienteNombre"   validate:"required,min=2,max=100"`
	ClienteTelefono string     `json:"clienteTelefono" validate:"required,min=6,max=30"`
	ClienteEmail    *string    `json:"clienteEmail"    validate:"omitempty,email"`
	Origen          string     `json:"origen"          validate:"required,min=3,max=200"`
	Destino         string     `json:"destino"         validate:"required,min=3,max=200"`
	FechaInicio     time.Time  `json:"fechaInicio"     validate:"required"`
	HoraInicio      string     `json:"horaInicio"      validate:"required,len=5"` // HH:MM
	Tipo            string     `json:"tipo"            validate:"required,oneof=UNICA PERIODICA"`
	FechaFin        *time.Time `json:"fechaFin"`
	HoraFin         *string    `json:"horaFin"         validate:"omitempty,len=5"`
	DiasSemana      []int      `json:"diasSemana"      validate:"omitempty,dive,min=0,max=6"`
	RemiseriaID     *string    `json:"remiseriaId"     validate:"omitempty,uuid"`
}

type ReservaResponse struct {
	ID              string     `json:"id"`
	ClienteNombre   string     `json:"clienteNombre"`
	ClienteTelefono string     `json:"clienteTelefono"`
	ClienteEmail    *string    `json:"clienteEmail"`
	Origen          string     `json:"origen"`
	Destino         string     `json:"destino"`
	FechaInicio     time.Time  `json:"fechaInicio"`
	HoraInicio      string     `json:"horaInicio"`
	Tipo            string     `json:"tipo"`
	FechaFin        *time.Time `json:"fechaFin"`
	HoraFin         *string    `json:"horaFin"`
	DiasSemana      []int      `json:"diasSemana"`
	Estado          string     `json:"estado"`
	ClienteID       *string    `json:"clienteId"`
	RemiseriaID     string     `json:"remiseriaId"`
}

package dto

import "time"

type CrearVehiculoRequest struct {
	Patente       string     `json:"patente"      validate:"required,min=6,max=10"`
	Marca         string     `json:"marca"        validate:"required,max=50"`
	Modelo        string     `json:"modelo"       validate:"required,max=50"`
	Anio          int        `json:"anio"         validate:"required,min=1980,max=2100"`
	Color         string     `json:"color"        validate:"required,max=30"`
	Tipo          string     `json:"tipo"         validate:"required,max=30"`
	Capacidad     int        `json:"capacidad"    validate:"required,min=1,max=60"`
	Propietario   string     `json:"propietario"  validate:"required,max=100"`
	VtoVTV        *time.Time `json:"vtoVtv"`
	VtoMatafuego  *time.Time `json:"vtoMatafuego"`
	VtoSeguro     *time.Time `json:"vtoSeguro"`
	Observaciones *string    `json:"observaciones" validate:"omitempty,max=500"`
	RemiseriaID   string     `json:"remiseriaId"  validate:"required,uuid"`
}

type ActualizarVehiculoRequest struct {
	Marca         *string    `json:"marca"        validate:"omitempty,max=50"`
	Modelo        *string    `json:"modelo"       validate:"omitempty,max=50"`
	Anio          *int       `json:"anio"         validate:"omitempty,min=1980,max=2100"`
	Color         *string    `json:"color"        validate:"omitempty,max=30"`
	Tipo          *string    `json:"tipo"         validate:"omitempty,max=30"`
	Capacidad     *int       `json:"capacidad"    validate:"omitempty,min=1,max=60"`
	Propietario   *string    `json:"propietario"  validate:"omitempty,max=100"`
	VtoVTV        *time.Time `json:"vtoVtv"`
	VtoMatafuego  *time.Time `json:"vtoMatafuego"`
	VtoSeguro     *time.Time `json:"vtoSeguro"`
	Observaciones *string    `json:"observaciones" validate:"omitempty,max=500"`
}

type VehiculoResponse struct {
	ID            string     `json:"id"`
	Patente       string     `json:"patente"`
	Marca         string     `json:"marca"`
	Modelo        string     `json:"modelo"`
	Anio          int        `json:"anio"`
	Color         string     `json:"color"`
	Tipo          string     `json:"tipo"`
	Capacidad     int        `json:"capacidad"`
	Propietario   string     `json:"propietario"`
	VtoVTV        *time.Time `json:"vtoVtv"`
	VtoMatafuego  *time.Time `json:"vtoMatafuego"`
	VtoSeguro     *time.Time `json:"vtoSeguro"`
	Observaciones *string    `json:"observaciones"`
	Estado        string     `json:"estado"`
	RemiseriaID   string     `json:"remiseriaId"`
}

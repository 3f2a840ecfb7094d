package dto

import "time"

type CrearChoferRequest struct {
	NumeroChofer      string    `json:"numeroChofer"      validate:"required,min=1,max=20"`
	Nombre            string    `json:"nombre"            validate:"required,min=2,max=100"`
	Apellido          string    `json:"apellido"          validate:"required,min=2,max=100"`
	DNI               string    `json:"dni"               validate:"required,min=6,max=15"`
	Telefono          string    `json:"telefono"          validate:"required,min=6,max=30"`
	Email             *string   `json:"email"             validate:"omitempty,email"`
	Direccion         *string   `json:"direccion"         validate:"omitempty,max=200"`
	CategoriaLicencia string    `json:"categoriaLicencia" validate:"required,max=10"`
	VtoLicencia       time.Time `json:"vtoLicencia"       validate:"required"`
	Observaciones     *string   `json:"observaciones"     validate:"omitempty,max=500"`
	RemiseriaID       string    `json:"remiseriaId"       validate:"required,uuid"`
	VehiculoID        *string   `json:"vehiculoId"        validate:"omitempty,uuid"`
}

type ActualizarChoferRequest struct {
	Nombre            *string    `json:"nombre"            validate:"omitempty,min=2,max=100"`
	Apellido          *string    `json:"apellido"          validate:"omitempty,min=2,max=100"`
	Telefono          *string    `json:"telefono"          validate:"omitempty,min=6,max=30"`
	Email             *string    `json:"email"             validate:"omitempty,email"`
	Direccion         *string    `json:"direccion"         validate:"omitempty,max=200"`
	CategoriaLicencia *string    `json:"categoriaLicencia" validate:"omitempty,max=10"`
	VtoLicencia       *time.Time `json:"vtoLicencia"`
	Observaciones     *string    `json:"observaciones"     validate:"omitempty,max=500"`
	VehiculoID        *string    `json:"vehiculoId"        validate:"omitempty,uuid"`
}

type ChoferResponse struct {
	ID                string    `json:"id"`
	NumeroChofer      string    `json:"numeroChofer"`
	Nombre            string    `json:"nombre"`
	Apellido          string    `json:"apellido"`
	DNI               string    `json:"dni"`
	Telefono          string    `json:"telefono"`
	Email             *string   `json:"email"`
	Direccion         *string   `json:"direccion"`
	CategoriaLicencia string    `json:"categoriaLicencia"`
	VtoLicencia       time.Time `json:"vtoLicencia"`
	Observaciones     *string   `json:"observaciones"`
	Estado            string    `json:"estado"`
	RemiseriaID       string    `json:"remiseriaId"`
	VehiculoID        *string   `json:"vehiculoId"`
}

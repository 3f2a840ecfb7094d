package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de reserva. COMPLETADA and CANCELADA are terminal.
const (
	ReservaActiva     = "ACTIVA"
	ReservaCompletada = "COMPLETADA"
	ReservaCancelada  = "CANCELADA"
)

// Tipos de reserva.
const (
	ReservaUnica     = "UNICA"
	ReservaPeriodica = "PERIODICA"
)

// Reserva is a booking. PERIODICA rows store the recurrence rule itself
// (DiasSemana is a serialized JSON list of weekday numbers); individual
// occurrences are never materialized.
type Reserva struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteNombre   string    `gorm:"not null"`
	ClienteTelefono string    `gorm:"not null"`
	ClienteEmail    *string
	Origen          string    `gorm:"not null"`
	Destino         string    `gorm:"not null"`
	FechaInicio     time.Time `gorm:"index;not null"`
	HoraInicio      string    `gorm:"not null"`
	Tipo            string    `gorm:"type:varchar(20);not null;default:'UNICA'"`
	FechaFin        *time.Time
	HoraFin         *string
	DiasSemana      *string
	Estado          string     `gorm:"type:varchar(20);index;not null;default:'ACTIVA'"`
	ClienteID       *uuid.UUID `gorm:"type:uuid;index"`
	RemiseriaID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Cliente   *Cliente   `gorm:"foreignKey:ClienteID"`
	Remiseria *Remiseria `gorm:"foreignKey:RemiseriaID"`
}

// EsTerminalReserva reports whether a reserva state admits no further transitions.
func EsTerminalReserva(estado string) bool {
	return estado == ReservaCompletada || estado == ReservaCancelada
}

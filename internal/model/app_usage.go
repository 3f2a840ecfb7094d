package model

import (
	"time"

	"github.com/google/uuid"
)

// Acciones registradas en telemetría.
const (
	AccionLogin         = "LOGIN"
	AccionRegister      = "REGISTER"
	AccionCreateViaje   = "CREATE_VIAJE"
	AccionCancelViaje   = "CANCEL_VIAJE"
	AccionCreateReserva = "CREATE_RESERVA"
	AccionCancelReserva = "CANCEL_RESERVA"
)

// AppUsage is an append-only audit record of user actions. Rows are written
// by the usage worker from the Redis queue and are never updated or deleted.
type AppUsage struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID    uuid.UUID `gorm:"type:uuid;index;not null"`
	UsuarioEmail string    `gorm:"not null"`
	Accion       string    `gorm:"index;not null"`
	Detalles     *string
	IPAddress    *string
	UserAgent    *string
	CreatedAt    time.Time `gorm:"index"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de vehículo. ToggleEstado cycles them in this exact order.
const (
	VehiculoActivo        = "ACTIVO"
	VehiculoMantenimiento = "MANTENIMIENTO"
	VehiculoInactivo      = "INACTIVO"
)

// Vehiculo belongs to one remisería and may have several choferes assigned.
type Vehiculo struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Patente       string    `gorm:"uniqueIndex;not null"`
	Marca         string    `gorm:"not null"`
	Modelo        string    `gorm:"not null"`
	Anio          int       `gorm:"not null"`
	Color         string    `gorm:"not null"`
	Tipo          string    `gorm:"not null"`
	Capacidad     int       `gorm:"not null"`
	Propietario   string    `gorm:"not null"`
	VtoVTV        *time.Time `gorm:"column:vto_vtv"`
	VtoMatafuego  *time.Time
	VtoSeguro     *time.Time
	Observaciones *string
	Estado        string    `gorm:"type:varchar(20);not null;default:'ACTIVO'"`
	RemiseriaID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Remiseria *Remiseria `gorm:"foreignKey:RemiseriaID"`
	Choferes  []Chofer   `gorm:"foreignKey:VehiculoID"`
}

// SiguienteEstadoVehiculo returns the next state in the fixed cycle
// ACTIVO → MANTENIMIENTO → INACTIVO → ACTIVO.
func SiguienteEstadoVehiculo(actual string) string {
	switch actual {
	case VehiculoActivo:
		return VehiculoMantenimiento
	case VehiculoMantenimiento:
		return VehiculoInactivo
	default:
		return VehiculoActivo
	}
}

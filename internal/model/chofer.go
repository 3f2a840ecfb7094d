package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de chofer. ToggleEstado cycles them in this exact order.
const (
	ChoferActivo     = "ACTIVO"
	ChoferSuspendido = "SUSPENDIDO"
	ChoferDadoDeBaja = "DADO_DE_BAJA"
)

// Chofer is a driver employed by one remisería, optionally assigned to a
// vehicle of the same remisería.
type Chofer struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroChofer     string    `gorm:"uniqueIndex;not null"`
	Nombre           string    `gorm:"not null"`
	Apellido         string    `gorm:"not null"`
	DNI              string    `gorm:"column:dni;uniqueIndex;not null"`
	Telefono         string    `gorm:"not null"`
	Email            *string
	Direccion        *string
	CategoriaLicencia string    `gorm:"not null"`
	VtoLicencia      time.Time `gorm:"not null"`
	Observaciones    *string
	Estado           string     `gorm:"type:varchar(20);not null;default:'ACTIVO'"`
	RemiseriaID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	VehiculoID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Remiseria *Remiseria `gorm:"foreignKey:RemiseriaID"`
	Vehiculo  *Vehiculo  `gorm:"foreignKey:VehiculoID"`
}

// SiguienteEstadoChofer returns the next state in the fixed cycle
// ACTIVO → SUSPENDIDO → DADO_DE_BAJA → ACTIVO.
func SiguienteEstadoChofer(actual string) string {
	switch actual {
	case ChoferActivo:
		return ChoferSuspendido
	case ChoferSuspendido:
		return ChoferDadoDeBaja
	default:
		return ChoferActivo
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Remiseria is the dispatch agency. Estado=false means fuera de servicio;
// rows are never hard-deleted while referenced (see RemiseriaService.Eliminar).
type Remiseria struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreFantasia string    `gorm:"not null"`
	RazonSocial    string    `gorm:"not null"`
	CUIT           string    `gorm:"column:cuit;uniqueIndex;not null"`
	Direccion      string    `gorm:"not null"`
	Telefono       string    `gorm:"not null"`
	Estado         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Duenios       []Duenio      `gorm:"many2many:remiseria_duenios"`
	Coordinadores []Coordinador `gorm:"foreignKey:RemiseriaID"`
	Choferes      []Chofer      `gorm:"foreignKey:RemiseriaID"`
	Vehiculos     []Vehiculo    `gorm:"foreignKey:RemiseriaID"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is the passenger profile linked 1:1 to a Usuario with rol CLIENTE.
type Cliente struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string    `gorm:"not null"`
	Apellido        string    `gorm:"not null"`
	DNI             string    `gorm:"column:dni;uniqueIndex;not null"`
	Telefono        string    `gorm:"not null"`
	Email           string    `gorm:"not null"`
	Direccion       string
	FechaNacimiento time.Time
	Genero          *string
	Activo          bool      `gorm:"not null;default:true"`
	UsuarioID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

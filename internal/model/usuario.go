package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles del sistema.
const (
	RolAdmin       = "ADMIN"
	RolDuenio      = "DUENIO"
	RolCoordinador = "COORDINADOR"
	RolCliente     = "CLIENTE"
)

// Usuario stores system accounts with role-based access.
// Each Usuario owns at most one role profile (Duenio, Coordinador or Cliente);
// ADMIN accounts carry no profile row.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Duenio      *Duenio      `gorm:"foreignKey:UsuarioID"`
	Coordinador *Coordinador `gorm:"foreignKey:UsuarioID"`
	Cliente     *Cliente     `gorm:"foreignKey:UsuarioID"`
}

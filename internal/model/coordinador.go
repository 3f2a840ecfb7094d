package model

import (
	"time"

	"github.com/google/uuid"
)

// Coordinador runs the dispatch dashboard of a single remisería.
// The UsuarioID link carries dashboard credentials; Activo mirrors the
// linked Usuario's flag when toggled.
type Coordinador struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Email       string    `gorm:"uniqueIndex;not null"`
	Telefono    string
	Activo      bool       `gorm:"not null;default:true"`
	RemiseriaID uuid.UUID  `gorm:"type:uuid;index;not null"`
	UsuarioID   *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Remiseria *Remiseria `gorm:"foreignKey:RemiseriaID"`
	Usuario   *Usuario   `gorm:"foreignKey:UsuarioID"`
}

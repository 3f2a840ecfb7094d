package model

import (
	"time"

	"github.com/google/uuid"
)

// Duenio is the owner profile linked 1:1 to a Usuario with rol DUENIO.
// A dueño may own several remiserías and a remisería may have several dueños.
type Duenio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Telefono  string    `gorm:"not null"`
	DNI       *string   `gorm:"column:dni;uniqueIndex"`
	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Usuario    *Usuario    `gorm:"foreignKey:UsuarioID"`
	Remiserias []Remiseria `gorm:"many2many:remiseria_duenios"`
}

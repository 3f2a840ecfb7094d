package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de viaje. COMPLETADO and CANCELADO are terminal.
const (
	ViajePendiente  = "PENDIENTE"
	ViajeEnCurso    = "EN_CURSO"
	ViajeCompletado = "COMPLETADO"
	ViajeCancelado  = "CANCELADO"
)

// Viaje is a trip. Client-requested trips start PENDIENTE and unassigned;
// a coordinator assigns chofer+vehículo which moves them to EN_CURSO.
// ClienteNombre/Telefono/Email are a snapshot taken at creation time for
// coordinator-entered trips; they are never reconciled against Cliente.
type Viaje struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Origen        string          `gorm:"not null"`
	Destino       string          `gorm:"not null"`
	Precio        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Fecha         time.Time       `gorm:"index;not null"`
	Estado        string          `gorm:"type:varchar(20);index;not null;default:'PENDIENTE'"`
	Observaciones *string
	Prioridad     *int

	ClienteID   *uuid.UUID `gorm:"type:uuid;index"`
	RemiseriaID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ChoferID    *uuid.UUID `gorm:"type:uuid;index"`
	VehiculoID  *uuid.UUID `gorm:"type:uuid"`

	ClienteNombre   *string
	ClienteTelefono *string
	ClienteEmail    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente   *Cliente   `gorm:"foreignKey:ClienteID"`
	Remiseria *Remiseria `gorm:"foreignKey:RemiseriaID"`
	Chofer    *Chofer    `gorm:"foreignKey:ChoferID"`
	Vehiculo  *Vehiculo  `gorm:"foreignKey:VehiculoID"`
}

// EsTerminalViaje reports whether a viaje state admits no further transitions.
func EsTerminalViaje(estado string) bool {
	return estado == ViajeCompletado || estado == ViajeCancelado
}

package dto

import "appremises/internal/repository"

// TrackUsageRequest records one user action from the frontend.
type TrackUsageRequest struct {
	Accion   string  `json:"accion"   validate:"required,min=2,max=60"`
	Detalles *string `json:"detalles" validate:"omitempty,max=2000"`
}

// UsageStatsResponse aggregates telemetry for the admin panel.
type UsageStatsResponse struct {
	Periodo      string                    `json:"periodo"`
	Total        int64                     `json:"total"`
	PorAccion    []repository.AccionCount  `json:"porAccion"`
	TopUsuarios  []repository.UsuarioCount `json:"topUsuarios"`
}

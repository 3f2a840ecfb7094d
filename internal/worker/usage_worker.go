package worker

import (
	"context"
	"encoding/json"

	"appremises/internal/model"
	"appremises/internal/repository"
)

// UsageWorker persists telemetry events from the usage queue into the
// append-only app_usages table.
type UsageWorker struct {
	repo repository.AppUsageRepository
}

func NewUsageWorker(repo repository.AppUsageRepository) *UsageWorker {
	return &UsageWorker{repo: repo}
}

func (w *UsageWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var p UsagePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}
	return w.repo.Create(ctx, &model.AppUsage{
		UsuarioID:    p.UsuarioID,
		UsuarioEmail: p.UsuarioEmail,
		Accion:       p.Accion,
		Detalles:     p.Detalles,
		IPAddress:    p.IPAddress,
		UserAgent:    p.UserAgent,
	})
}

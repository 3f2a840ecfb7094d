package worker

import (
	"context"
	"encoding/json"

	"appremises/internal/infra"
)

// EmailWorker delivers queued notification mails (coordinator welcome, etc.).
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var p EmailPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}
	return w.mailer.Send(p.To, p.Subject, p.Body)
}

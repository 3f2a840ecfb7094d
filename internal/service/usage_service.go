package service

import (
	"context"
	"time"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/repository"
	"appremises/internal/worker"

	"github.com/google/uuid"
)

const topUsuariosLimit = 10

type UsageService interface {
	// Track enqueues one telemetry event from the frontend.
	Track(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.TrackUsageRequest, meta RequestMeta)
	// Stats aggregates events for the admin panel over 24h, 7d or 30d.
	Stats(ctx context.Context, periodo string) (*dto.UsageStatsResponse, error)
}

type usageService struct {
	repo       repository.AppUsageRepository
	dispatcher *worker.Dispatcher
}

func NewUsageService(repo repository.AppUsageRepository, dispatcher *worker.Dispatcher) UsageService {
	return &usageService{repo: repo, dispatcher: dispatcher}
}

func (s *usageService) Track(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.TrackUsageRequest, meta RequestMeta) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.TrackUsage(ctx, worker.UsagePayload{
		UsuarioID:    usuarioID,
		UsuarioEmail: usuarioEmail,
		Accion:       req.Accion,
		Detalles:     req.Detalles,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	})
}

func (s *usageService) Stats(ctx context.Context, periodo string) (*dto.UsageStatsResponse, error) {
	var ventana time.Duration
	switch periodo {
	case "", "24h":
		periodo = "24h"
		ventana = 24 * time.Hour
	case "7d":
		ventana = 7 * 24 * time.Hour
	case "30d":
		ventana = 30 * 24 * time.Hour
	default:
		return nil, apierror.Validation("Período inválido: use 24h, 7d o 30d")
	}
	desde := time.Now().Add(-ventana)

	total, err := s.repo.CountSince(ctx, desde)
	if err != nil {
		return nil, err
	}
	porAccion, err := s.repo.CountByAccion(ctx, desde)
	if err != nil {
		return nil, err
	}
	topUsuarios, err := s.repo.CountByUsuario(ctx, desde, topUsuariosLimit)
	if err != nil {
		return nil, err
	}

	return &dto.UsageStatsResponse{
		Periodo:     periodo,
		Total:       total,
		PorAccion:   porAccion,
		TopUsuarios: topUsuarios,
	}, nil
}

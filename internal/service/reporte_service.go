package service

import (
	"context"
	"strings"
	"time"

	"appremises/internal/apierror"
	"appremises/internal/infra"
	"appremises/internal/repository"

	"github.com/google/uuid"
)

// ReporteService renders the dueño trip report as a PDF covering all the
// dueño's remiserías over a date range.
type ReporteService interface {
	ViajesPDF(ctx context.Context, usuarioID uuid.UUID, desde, hasta time.Time) ([]byte, error)
}

type reporteService struct {
	duenioRepo repository.DuenioRepository
	viajeRepo  repository.ViajeRepository
}

func NewReporteService(duenioRepo repository.DuenioRepository, viajeRepo repository.ViajeRepository) ReporteService {
	return &reporteService{duenioRepo: duenioRepo, viajeRepo: viajeRepo}
}

func (s *reporteService) ViajesPDF(ctx context.Context, usuarioID uuid.UUID, desde, hasta time.Time) ([]byte, error) {
	if hasta.Before(desde) {
		return nil, apierror.Validation("El rango de fechas es inválido")
	}

	duenio, err := s.duenioRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Dueño no encontrado")
	}
	if len(duenio.Remiserias) == 0 {
		return nil, apierror.Validation("El dueño no tiene remiserías asociadas")
	}

	viajes, err := s.viajeRepo.ListByRemiseriasAndRange(ctx, remiseriaIDs(duenio), desde, hasta)
	if err != nil {
		return nil, err
	}

	nombres := make([]string, len(duenio.Remiserias))
	for i, rem := range duenio.Remiserias {
		nombres[i] = rem.NombreFantasia
	}
	titulo := strings.Join(nombres, ", ")

	return infra.GenerateViajesPDF(titulo, desde, hasta, viajes)
}

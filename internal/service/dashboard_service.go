package service

import (
	"context"

	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"

	"github.com/google/uuid"
)

// DashboardService backs the coordinator panel. Every query is scoped to the
// remisería of the authenticated coordinator.
type DashboardService interface {
	ViajesEnCurso(ctx context.Context, usuarioID uuid.UUID) ([]dto.ViajeResponse, error)
	ViajesSinAsignar(ctx context.Context, usuarioID uuid.UUID) ([]dto.ViajeResponse, error)
	ReservasActivas(ctx context.Context, usuarioID uuid.UUID) ([]dto.ReservaResponse, error)
	Stats(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardStatsResponse, error)
	VehiculosTiempoReal(ctx context.Context, usuarioID uuid.UUID) ([]dto.VehiculoTiempoRealResponse, error)
	ChoferesTiempoReal(ctx context.Context, usuarioID uuid.UUID) ([]dto.ChoferTiempoRealResponse, error)
}

type dashboardService struct {
	coordinadorRepo repository.CoordinadorRepository
	viajeRepo       repository.ViajeRepository
	reservaRepo     repository.ReservaRepository
	vehiculoRepo    repository.VehiculoRepository
	choferRepo      repository.ChoferRepository
}

func NewDashboardService(
	coordinadorRepo repository.CoordinadorRepository,
	viajeRepo repository.ViajeRepository,
	reservaRepo repository.ReservaRepository,
	vehiculoRepo repository.VehiculoRepository,
	choferRepo repository.ChoferRepository,
) DashboardService {
	return &dashboardService{
		coordinadorRepo: coordinadorRepo,
		viajeRepo:       viajeRepo,
		reservaRepo:     reservaRepo,
		vehiculoRepo:    vehiculoRepo,
		choferRepo:      choferRepo,
	}
}

func (s *dashboardService) remiseria(ctx context.Context, usuarioID uuid.UUID) (uuid.UUID, error) {
	co, err := s.coordinadorRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return uuid.Nil, mapFindErr(err, "Coordinador no encontrado")
	}
	return co.RemiseriaID, nil
}

func (s *dashboardService) ViajesEnCurso(ctx context.Context, usuarioID uuid.UUID) ([]dto.ViajeResponse, error) {
	remiseriaID, err := s.remiseria(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	vs, err := s.viajeRepo.EnCurso(ctx, remiseriaID)
	if err != nil {
		return nil, err
	}
	return viajesToResponse(vs), nil
}

func (s *dashboardService) ViajesSinAsignar(ctx context.Context, usuarioID uuid.UUID) ([]dto.ViajeResponse, error) {
	remiseriaID, err := s.remiseria(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	vs, err := s.viajeRepo.SinAsignar(ctx, remiseriaID)
	if err != nil {
		return nil, err
	}
	return viajesToResponse(vs), nil
}

func (s *dashboardService) ReservasActivas(ctx context.Context, usuarioID uuid.UUID) ([]dto.ReservaResponse, error) {
	remiseriaID, err := s.remiseria(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	rs, err := s.reservaRepo.Activas(ctx, remiseriaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReservaResponse, len(rs))
	for i := range rs {
		resp[i] = reservaToResponse(&rs[i])
	}
	return resp, nil
}

func (s *dashboardService) Stats(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardStatsResponse, error) {
	remiseriaID, err := s.remiseria(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	hoy, err := s.viajeRepo.CountHoy(ctx, remiseriaID)
	if err != nil {
		return nil, err
	}
	enCurso, err := s.viajeRepo.CountByEstado(ctx, remiseriaID, model.ViajeEnCurso)
	if err != nil {
		return nil, err
	}
	pendientes, err := s.viajeRepo.CountByEstado(ctx, remiseriaID, model.ViajePendiente)
	if err != nil {
		return nil, err
	}
	reservas, err := s.reservaRepo.CountActivas(ctx, remiseriaID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		ViajesHoy:        hoy,
		ViajesEnCurso:    enCurso,
		ViajesSinAsignar: pendientes,
		ReservasActivas:  reservas,
	}, nil
}

func (s *dashboardService) VehiculosTiempoReal(ctx context.Context, usuarioID uuid.UUID) ([]dto.VehiculoTiempoRealResponse, error) {
	remiseriaID, err := s.remiseria(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	vs, err := s.vehiculoRepo.ListByRemiseria(ctx, remiseriaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehiculoTiempoRealResponse, len(vs))
	for i := range vs {
		lat, lng := puntoSimulado()
		resp[i] = dto.VehiculoTiempoRealResponse{
			VehiculoID: vs[i].ID.String(),
			Patente:    vs[i].Patente,
			Estado:     vs[i].Estado,
			Latitud:    lat,
			Longitud:   lng,
			Simulado:   true,
		}
	}
	return resp, nil
}

func (s *dashboardService) ChoferesTiempoReal(ctx context.Context, usuarioID uuid.UUID) ([]dto.ChoferTiempoRealResponse, error) {
	remiseriaID, err := s.remiseria(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	chs, err := s.choferRepo.ListByRemiseria(ctx, remiseriaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ChoferTiempoRealResponse, len(chs))
	for i := range chs {
		lat, lng := puntoSimulado()
		resp[i] = dto.ChoferTiempoRealResponse{
			ChoferID:     chs[i].ID.String(),
			NumeroChofer: chs[i].NumeroChofer,
			Nombre:       chs[i].Nombre,
			Apellido:     chs[i].Apellido,
			Estado:       chs[i].Estado,
			Latitud:      lat,
			Longitud:     lng,
			Simulado:     true,
		}
	}
	return resp, nil
}

func viajesToResponse(vs []model.Viaje) []dto.ViajeResponse {
	resp := make([]dto.ViajeResponse, len(vs))
	for i := range vs {
		resp[i] = viajeToResponse(&vs[i])
	}
	return resp
}

package service

import (
	"context"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"

	"github.com/google/uuid"
)

type VehiculoService interface {
	Listar(ctx context.Context, rol string, usuarioID uuid.UUID, remiseriaID *uuid.UUID) ([]dto.VehiculoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error)
	Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error)
	// ToggleEstado cycles ACTIVO → MANTENIMIENTO → INACTIVO → ACTIVO.
	ToggleEstado(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error)
	// Baja soft-deletes by setting INACTIVO.
	Baja(ctx context.Context, id uuid.UUID) error
}

type vehiculoService struct {
	repo          repository.VehiculoRepository
	remiseriaRepo repository.RemiseriaRepository
	duenioRepo    repository.DuenioRepository
}

func NewVehiculoService(
	repo repository.VehiculoRepository,
	remiseriaRepo repository.RemiseriaRepository,
	duenioRepo repository.DuenioRepository,
) VehiculoService {
	return &vehiculoService{repo: repo, remiseriaRepo: remiseriaRepo, duenioRepo: duenioRepo}
}

func (s *vehiculoService) Listar(ctx context.Context, rol string, usuarioID uuid.UUID, remiseriaID *uuid.UUID) ([]dto.VehiculoResponse, error) {
	var (
		vs  []model.Vehiculo
		err error
	)
	switch {
	case remiseriaID != nil:
		vs, err = s.repo.ListByRemiseria(ctx, *remiseriaID)
	case rol == model.RolDuenio:
		duenio, derr := s.duenioRepo.FindByUsuario(ctx, usuarioID)
		if derr != nil {
			return nil, mapFindErr(derr, "Dueño no encontrado")
		}
		vs, err = s.repo.ListByRemiserias(ctx, remiseriaIDs(duenio))
	default:
		vs, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehiculoResponse, len(vs))
	for i := range vs {
		resp[i] = vehiculoToResponse(&vs[i])
	}
	return resp, nil
}

func (s *vehiculoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Vehículo no encontrado")
	}
	resp := vehiculoToResponse(v)
	return &resp, nil
}

func (s *vehiculoService) Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	remiseriaID, err := uuid.Parse(req.RemiseriaID)
	if err != nil {
		return nil, apierror.Validation("remiseriaId inválido")
	}
	if _, err := s.remiseriaRepo.FindByID(ctx, remiseriaID); err != nil {
		return nil, apierror.Reference("La remisería indicada no existe")
	}

	if _, err := s.repo.FindByPatente(ctx, req.Patente); err == nil {
		return nil, apierror.Duplicate("La patente ya está registrada")
	}

	v := &model.Vehiculo{
		Patente:       req.Patente,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Anio:          req.Anio,
		Color:         req.Color,
		Tipo:          req.Tipo,
		Capacidad:     req.Capacidad,
		Propietario:   req.Propietario,
		VtoVTV:        req.VtoVTV,
		VtoMatafuego:  req.VtoMatafuego,
		VtoSeguro:     req.VtoSeguro,
		Observaciones: req.Observaciones,
		Estado:        model.VehiculoActivo,
		RemiseriaID:   remiseriaID,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, mapCreateErr(err, "La patente ya está registrada")
	}

	resp := vehiculoToResponse(v)
	return &resp, nil
}

func (s *vehiculoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Vehículo no encontrado")
	}

	if req.Marca != nil {
		v.Marca = *req.Marca
	}
	if req.Modelo != nil {
		v.Modelo = *req.Modelo
	}
	if req.Anio != nil {
		v.Anio = *req.Anio
	}
	if req.Color != nil {
		v.Color = *req.Color
	}
	if req.Tipo != nil {
		v.Tipo = *req.Tipo
	}
	if req.Capacidad != nil {
		v.Capacidad = *req.Capacidad
	}
	if req.Propietario != nil {
		v.Propietario = *req.Propietario
	}
	if req.VtoVTV != nil {
		v.VtoVTV = req.VtoVTV
	}
	if req.VtoMatafuego != nil {
		v.VtoMatafuego = req.VtoMatafuego
	}
	if req.VtoSeguro != nil {
		v.VtoSeguro = req.VtoSeguro
	}
	if req.Observaciones != nil {
		v.Observaciones = req.Observaciones
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := vehiculoToResponse(v)
	return &resp, nil
}

func (s *vehiculoService) ToggleEstado(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Vehículo no encontrado")
	}
	v.Estado = model.SiguienteEstadoVehiculo(v.Estado)
	if err := s.repo.UpdateEstado(ctx, v.ID, v.Estado); err != nil {
		return nil, err
	}
	resp := vehiculoToResponse(v)
	return &resp, nil
}

func (s *vehiculoService) Baja(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Vehículo no encontrado")
	}
	return s.repo.UpdateEstado(ctx, id, model.VehiculoInactivo)
}

func vehiculoToResponse(v *model.Vehiculo) dto.VehiculoResponse {
	return dto.VehiculoResponse{
		ID:            v.ID.String(),
		Patente:       v.Patente,
		Marca:         v.Marca,
		Modelo:        v.Modelo,
		Anio:          v.Anio,
		Color:         v.Color,
		Tipo:          v.Tipo,
		Capacidad:     v.Capacidad,
		Propietario:   v.Propietario,
		VtoVTV:        v.VtoVTV,
		VtoMatafuego:  v.VtoMatafuego,
		VtoSeguro:     v.VtoSeguro,
		Observaciones: v.Observaciones,
		Estado:        v.Estado,
		RemiseriaID:   v.RemiseriaID.String(),
	}
}

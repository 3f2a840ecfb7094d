package service

import (
	"context"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"

	"github.com/google/uuid"
)

type ChoferService interface {
	// Listar: ADMIN sees all, DUENIO only drivers of their remiserías;
	// remiseriaID (optional) narrows further.
	Listar(ctx context.Context, rol string, usuarioID uuid.UUID, remiseriaID *uuid.UUID) ([]dto.ChoferResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ChoferResponse, error)
	Crear(ctx context.Context, req dto.CrearChoferRequest) (*dto.ChoferResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarChoferRequest) (*dto.ChoferResponse, error)
	// ToggleEstado cycles ACTIVO → SUSPENDIDO → DADO_DE_BAJA → ACTIVO.
	ToggleEstado(ctx context.Context, id uuid.UUID) (*dto.ChoferResponse, error)
	// Baja soft-deletes by setting DADO_DE_BAJA.
	Baja(ctx context.Context, id uuid.UUID) error
}

type choferService struct {
	repo          repository.ChoferRepository
	remiseriaRepo repository.RemiseriaRepository
	vehiculoRepo  repository.VehiculoRepository
	duenioRepo    repository.DuenioRepository
}

func NewChoferService(
	repo repository.ChoferRepository,
	remiseriaRepo repository.RemiseriaRepository,
	vehiculoRepo repository.VehiculoRepository,
	duenioRepo repository.DuenioRepository,
) ChoferService {
	return &choferService{repo: repo, remiseriaRepo: remiseriaRepo, vehiculoRepo: vehiculoRepo, duenioRepo: duenioRepo}
}

func (s *choferService) Listar(ctx context.Context, rol string, usuarioID uuid.UUID, remiseriaID *uuid.UUID) ([]dto.ChoferResponse, error) {
	var (
		chs []model.Chofer
		err error
	)
	switch {
	case remiseriaID != nil:
		chs, err = s.repo.ListByRemiseria(ctx, *remiseriaID)
	case rol == model.RolDuenio:
		duenio, derr := s.duenioRepo.FindByUsuario(ctx, usuarioID)
		if derr != nil {
			return nil, mapFindErr(derr, "Dueño no encontrado")
		}
		chs, err = s.repo.ListByRemiserias(ctx, remiseriaIDs(duenio))
	default:
		chs, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ChoferResponse, len(chs))
	for i := range chs {
		resp[i] = choferToResponse(&chs[i])
	}
	return resp, nil
}

func (s *choferService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ChoferResponse, error) {
	ch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Chofer no encontrado")
	}
	resp := choferToResponse(ch)
	return &resp, nil
}

func (s *choferService) Crear(ctx context.Context, req dto.CrearChoferRequest) (*dto.ChoferResponse, error) {
	remiseriaID, err := uuid.Parse(req.RemiseriaID)
	if err != nil {
		return nil, apierror.Validation("remiseriaId inválido")
	}
	if _, err := s.remiseriaRepo.FindByID(ctx, remiseriaID); err != nil {
		return nil, apierror.Reference("La remisería indicada no existe")
	}

	var vehiculoID *uuid.UUID
	if req.VehiculoID != nil {
		vid, err := uuid.Parse(*req.VehiculoID)
		if err != nil {
			return nil, apierror.Validation("vehiculoId inválido")
		}
		veh, err := s.vehiculoRepo.FindByID(ctx, vid)
		if err != nil {
			return nil, apierror.Reference("El vehículo indicado no existe")
		}
		if veh.RemiseriaID != remiseriaID {
			return nil, apierror.Validation("El vehículo pertenece a otra remisería")
		}
		vehiculoID = &vid
	}

	// Friendly pre-checks; unique indexes remain the authority.
	if _, err := s.repo.FindByNumero(ctx, req.NumeroChofer); err == nil {
		return nil, apierror.Duplicate("El número de chofer ya está registrado")
	}
	if _, err := s.repo.FindByDNI(ctx, req.DNI); err == nil {
		return nil, apierror.Duplicate("El DNI ya está registrado")
	}

	ch := &model.Chofer{
		NumeroChofer:      req.NumeroChofer,
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		DNI:               req.DNI,
		Telefono:          req.Telefono,
		Email:             req.Email,
		Direccion:         req.Direccion,
		CategoriaLicencia: req.CategoriaLicencia,
		VtoLicencia:       req.VtoLicencia,
		Observaciones:     req.Observaciones,
		Estado:            model.ChoferActivo,
		RemiseriaID:       remiseriaID,
		VehiculoID:        vehiculoID,
	}
	if err := s.repo.Create(ctx, ch); err != nil {
		return nil, mapCreateErr(err, "El número de chofer o el DNI ya está registrado")
	}

	resp := choferToResponse(ch)
	return &resp, nil
}

func (s *choferService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarChoferRequest) (*dto.ChoferResponse, error) {
	ch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Chofer no encontrado")
	}

	if req.Nombre != nil {
		ch.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		ch.Apellido = *req.Apellido
	}
	if req.Telefono != nil {
		ch.Telefono = *req.Telefono
	}
	if req.Email != nil {
		ch.Email = req.Email
	}
	if req.Direccion != nil {
		ch.Direccion = req.Direccion
	}
	if req.CategoriaLicencia != nil {
		ch.CategoriaLicencia = *req.CategoriaLicencia
	}
	if req.VtoLicencia != nil {
		ch.VtoLicencia = *req.VtoLicencia
	}
	if req.Observaciones != nil {
		ch.Observaciones = req.Observaciones
	}
	if req.VehiculoID != nil {
		vid, err := uuid.Parse(*req.VehiculoID)
		if err != nil {
			return nil, apierror.Validation("vehiculoId inválido")
		}
		veh, err := s.vehiculoRepo.FindByID(ctx, vid)
		if err != nil {
			return nil, apierror.Reference("El vehículo indicado no existe")
		}
		if veh.RemiseriaID != ch.RemiseriaID {
			return nil, apierror.Validation("El vehículo pertenece a otra remisería")
		}
		ch.VehiculoID = &vid
	}

	if err := s.repo.Update(ctx, ch); err != nil {
		return nil, err
	}
	resp := choferToResponse(ch)
	return &resp, nil
}

func (s *choferService) ToggleEstado(ctx context.Context, id uuid.UUID) (*dto.ChoferResponse, error) {
	ch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Chofer no encontrado")
	}
	ch.Estado = model.SiguienteEstadoChofer(ch.Estado)
	if err := s.repo.UpdateEstado(ctx, ch.ID, ch.Estado); err != nil {
		return nil, err
	}
	resp := choferToResponse(ch)
	return &resp, nil
}

func (s *choferService) Baja(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Chofer no encontrado")
	}
	return s.repo.UpdateEstado(ctx, id, model.ChoferDadoDeBaja)
}

func choferToResponse(ch *model.Chofer) dto.ChoferResponse {
	resp := dto.ChoferResponse{
		ID:                ch.ID.String(),
		NumeroChofer:      ch.NumeroChofer,
		Nombre:            ch.Nombre,
		Apellido:          ch.Apellido,
		DNI:               ch.DNI,
		Telefono:          ch.Telefono,
		Email:             ch.Email,
		Direccion:         ch.Direccion,
		CategoriaLicencia: ch.CategoriaLicencia,
		VtoLicencia:       ch.VtoLicencia,
		Observaciones:     ch.Observaciones,
		Estado:            ch.Estado,
		RemiseriaID:       ch.RemiseriaID.String(),
	}
	if ch.VehiculoID != nil {
		vid := ch.VehiculoID.String()
		resp.VehiculoID = &vid
	}
	return resp
}

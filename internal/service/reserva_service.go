package service

import (
	"context"
	"encoding/json"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"
	"appremises/internal/worker"

	"github.com/google/uuid"
)

type ReservaService interface {
	// CrearPorCliente books for the authenticated CLIENTE. The remisería is
	// picked by the least-loaded matcher and contact data is snapshotted
	// from the profile when not given.
	CrearPorCliente(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.CrearReservaRequest, meta RequestMeta) (*dto.ReservaResponse, error)
	// CrearPorCoordinador books on behalf of a walk-in/phone customer,
	// scoped to the coordinator's own remisería.
	CrearPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.CrearReservaRequest, meta RequestMeta) (*dto.ReservaResponse, error)
	ListarDelCliente(ctx context.Context, usuarioID uuid.UUID) ([]dto.ReservaResponse, error)
	CancelarPorCliente(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, reservaID uuid.UUID, meta RequestMeta) (*dto.ReservaResponse, error)
	CancelarPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, reservaID uuid.UUID, meta RequestMeta) (*dto.ReservaResponse, error)
	Completar(ctx context.Context, usuarioID, reservaID uuid.UUID) (*dto.ReservaResponse, error)
}

type reservaService struct {
	repo            repository.ReservaRepository
	clienteRepo     repository.ClienteRepository
	coordinadorRepo repository.CoordinadorRepository
	remiseriaRepo   repository.RemiseriaRepository
	dispatcher      *worker.Dispatcher
}

func NewReservaService(
	repo repository.ReservaRepository,
	clienteRepo repository.ClienteRepository,
	coordinadorRepo repository.CoordinadorRepository,
	remiseriaRepo repository.RemiseriaRepository,
	dispatcher *worker.Dispatcher,
) ReservaService {
	return &reservaService{
		repo:            repo,
		clienteRepo:     clienteRepo,
		coordinadorRepo: coordinadorRepo,
		remiseriaRepo:   remiseriaRepo,
		dispatcher:      dispatcher,
	}
}

func (s *reservaService) CrearPorCliente(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.CrearReservaRequest, meta RequestMeta) (*dto.ReservaResponse, error) {
	cl, err := s.clienteRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}

	rem, err := s.remiseriaRepo.FindMenosCargada(ctx)
	if err != nil {
		return nil, apierror.Validation("No hay remiserías disponibles para tomar la reserva")
	}

	res, err := buildReserva(req, rem.ID)
	if err != nil {
		return nil, err
	}
	res.ClienteID = &cl.ID
	if res.ClienteEmail == nil {
		res.ClienteEmail = &cl.Email
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.track(ctx, usuarioID, usuarioEmail, model.AccionCreateReserva, meta)
	resp := reservaToResponse(res)
	return &resp, nil
}

func (s *reservaService) CrearPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.CrearReservaRequest, meta RequestMeta) (*dto.ReservaResponse, error) {
	co, err := s.coordinadorRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Coordinador no encontrado")
	}

	res, err := buildReserva(req, co.RemiseriaID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.track(ctx, usuarioID, usuarioEmail, model.AccionCreateReserva, meta)
	resp := reservaToResponse(res)
	return &resp, nil
}

func (s *reservaService) ListarDelCliente(ctx context.Context, usuarioID uuid.UUID) ([]dto.ReservaResponse, error) {
	cl, err := s.clienteRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}
	rs, err := s.repo.ListByCliente(ctx, cl.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ReservaResponse, len(rs))
	for i := range rs {
		resp[i] = reservaToResponse(&rs[i])
	}
	return resp, nil
}

func (s *reservaService) CancelarPorCliente(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, reservaID uuid.UUID, meta RequestMeta) (*dto.ReservaResponse, error) {
	cl, err := s.clienteRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}
	res, err := s.repo.FindByID(ctx, reservaID)
	if err != nil {
		return nil, mapFindErr(err, "Reserva no encontrada")
	}
	if res.ClienteID == nil || *res.ClienteID != cl.ID {
		return nil, apierror.NotFound("Reserva no encontrada")
	}
	return s.cancelar(ctx, res, usuarioID, usuarioEmail, meta)
}

func (s *reservaService) CancelarPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, reservaID uuid.UUID, meta RequestMeta) (*dto.ReservaResponse, error) {
	co, err := s.coordinadorRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Coordinador no encontrado")
	}
	res, err := s.repo.FindByID(ctx, reservaID)
	if err != nil {
		return nil, mapFindErr(err, "Reserva no encontrada")
	}
	if res.RemiseriaID != co.RemiseriaID {
		return nil, apierror.NotFound("Reserva no encontrada")
	}
	return s.cancelar(ctx, res, usuarioID, usuarioEmail, meta)
}

func (s *reservaService) Completar(ctx context.Context, usuarioID, reservaID uuid.UUID) (*dto.ReservaResponse, error) {
	co, err := s.coordinadorRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Coordinador no encontrado")
	}
	res, err := s.repo.FindByID(ctx, reservaID)
	if err != nil {
		return nil, mapFindErr(err, "Reserva no encontrada")
	}
	if res.RemiseriaID != co.RemiseriaID {
		return nil, apierror.NotFound("Reserva no encontrada")
	}
	if model.EsTerminalReserva(res.Estado) {
		return nil, apierror.Validation("La reserva ya está finalizada")
	}

	if err := s.repo.UpdateEstado(ctx, res.ID, model.ReservaCompletada); err != nil {
		return nil, err
	}
	res.Estado = model.ReservaCompletada

	resp := reservaToResponse(res)
	return &resp, nil
}

func (s *reservaService) cancelar(ctx context.Context, res *model.Reserva, usuarioID uuid.UUID, usuarioEmail string, meta RequestMeta) (*dto.ReservaResponse, error) {
	if model.EsTerminalReserva(res.Estado) {
		return nil, apierror.Validation("No se puede cancelar una reserva finalizada")
	}
	if err := s.repo.UpdateEstado(ctx, res.ID, model.ReservaCancelada); err != nil {
		return nil, err
	}
	res.Estado = model.ReservaCancelada

	s.track(ctx, usuarioID, usuarioEmail, model.AccionCancelReserva, meta)
	resp := reservaToResponse(res)
	return &resp, nil
}

func (s *reservaService) track(ctx context.Context, usuarioID uuid.UUID, email, accion string, meta RequestMeta) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.TrackUsage(ctx, worker.UsagePayload{
		UsuarioID:    usuarioID,
		UsuarioEmail: email,
		Accion:       accion,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	})
}

// buildReserva validates the UNICA/PERIODICA branch and serializes the
// recurrence rule.
func buildReserva(req dto.CrearReservaRequest, remiseriaID uuid.UUID) (*model.Reserva, error) {
	res := &model.Reserva{
		ClienteNombre:   req.ClienteNombre,
		ClienteTelefono: req.ClienteTelefono,
		ClienteEmail:    req.ClienteEmail,
		Origen:          req.Origen,
		Destino:         req.Destino,
		FechaInicio:     req.FechaInicio,
		HoraInicio:      req.HoraInicio,
		Tipo:            req.Tipo,
		Estado:          model.ReservaActiva,
		RemiseriaID:     remiseriaID,
	}

	switch req.Tipo {
	case model.ReservaPeriodica:
		if req.FechaFin == nil || req.HoraFin == nil || len(req.DiasSemana) == 0 {
			return nil, apierror.Validation("Una reserva periódica requiere fechaFin, horaFin y diasSemana")
		}
		dias, err := json.Marshal(req.DiasSemana)
		if err != nil {
			return nil, err
		}
		serialized := string(dias)
		res.FechaFin = req.FechaFin
		res.HoraFin = req.HoraFin
		res.DiasSemana = &serialized
	case model.ReservaUnica:
		// recurrence fields are ignored for UNICA
	}

	return res, nil
}

func reservaToResponse(res *model.Reserva) dto.ReservaResponse {
	resp := dto.ReservaResponse{
		ID:              res.ID.String(),
		ClienteNombre:   res.ClienteNombre,
		ClienteTelefono: res.ClienteTelefono,
		ClienteEmail:    res.ClienteEmail,
		Origen:          res.Origen,
		Destino:         res.Destino,
		FechaInicio:     res.FechaInicio,
		HoraInicio:      res.HoraInicio,
		Tipo:            res.Tipo,
		FechaFin:        res.FechaFin,
		HoraFin:         res.HoraFin,
		Estado:          res.Estado,
		RemiseriaID:     res.RemiseriaID.String(),
	}
	if res.DiasSemana != nil {
		var dias []int
		if err := json.Unmarshal([]byte(*res.DiasSemana), &dias); err == nil {
			resp.DiasSemana = dias
		}
	}
	if res.ClienteID != nil {
		id := res.ClienteID.String()
		resp.ClienteID = &id
	}
	return resp
}

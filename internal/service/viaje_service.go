package service

import (
	"context"
	"time"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"
	"appremises/internal/worker"

	"github.com/google/uuid"
)

type ViajeService interface {
	// Solicitar is the client booking flow: price via tarifa, remisería via
	// the least-loaded matcher, estado PENDIENTE and no chofer assigned.
	Solicitar(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.SolicitarViajeRequest, meta RequestMeta) (*dto.ViajeResponse, error)
	ListarDelCliente(ctx context.Context, usuarioID uuid.UUID) ([]dto.ViajeResponse, error)
	CancelarPorCliente(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, viajeID uuid.UUID, meta RequestMeta) (*dto.ViajeResponse, error)

	// CrearPorCoordinador registers a walk-in/phone trip scoped to the
	// coordinator's own remisería, with the client-contact snapshot.
	CrearPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.CrearViajeRequest, meta RequestMeta) (*dto.ViajeResponse, error)
	// Asignar moves a PENDIENTE viaje to EN_CURSO after validating that
	// chofer and vehículo belong to the remisería and are ACTIVO.
	Asignar(ctx context.Context, usuarioID, viajeID uuid.UUID, req dto.AsignarViajeRequest) (*dto.ViajeResponse, error)
	Completar(ctx context.Context, usuarioID, viajeID uuid.UUID) (*dto.ViajeResponse, error)
	CancelarPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, viajeID uuid.UUID, meta RequestMeta) (*dto.ViajeResponse, error)
}

type viajeService struct {
	repo            repository.ViajeRepository
	clienteRepo     repository.ClienteRepository
	coordinadorRepo repository.CoordinadorRepository
	choferRepo      repository.ChoferRepository
	vehiculoRepo    repository.VehiculoRepository
	remiseriaRepo   repository.RemiseriaRepository
	tarifa          TarifaService
	dispatcher      *worker.Dispatcher
}

func NewViajeService(
	repo repository.ViajeRepository,
	clienteRepo repository.ClienteRepository,
	coordinadorRepo repository.CoordinadorRepository,
	choferRepo repository.ChoferRepository,
	vehiculoRepo repository.VehiculoRepository,
	remiseriaRepo repository.RemiseriaRepository,
	tarifa TarifaService,
	dispatcher *worker.Dispatcher,
) ViajeService {
	return &viajeService{
		repo:            repo,
		clienteRepo:     clienteRepo,
		coordinadorRepo: coordinadorRepo,
		choferRepo:      choferRepo,
		vehiculoRepo:    vehiculoRepo,
		remiseriaRepo:   remiseriaRepo,
		tarifa:          tarifa,
		dispatcher:      dispatcher,
	}
}

func (s *viajeService) Solicitar(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.SolicitarViajeRequest, meta RequestMeta) (*dto.ViajeResponse, error) {
	cl, err := s.clienteRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}

	precio, err := s.tarifa.Estimar(ctx, req.Origen, req.Destino)
	if err != nil {
		return nil, err
	}

	rem, err := s.remiseriaRepo.FindMenosCargada(ctx)
	if err != nil {
		return nil, apierror.Validation("No hay remiserías disponibles para tomar el viaje")
	}

	fecha := time.Now()
	if req.FechaHora != nil {
		fecha = *req.FechaHora
	}

	nombre := cl.Nombre + " " + cl.Apellido
	v := &model.Viaje{
		Origen:          req.Origen,
		Destino:         req.Destino,
		Precio:          precio.Precio,
		Fecha:           fecha,
		Estado:          model.ViajePendiente,
		Observaciones:   req.Observaciones,
		ClienteID:       &cl.ID,
		RemiseriaID:     rem.ID,
		ClienteNombre:   &nombre,
		ClienteTelefono: &cl.Telefono,
		ClienteEmail:    &cl.Email,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.track(ctx, usuarioID, usuarioEmail, model.AccionCreateViaje, meta)
	resp := viajeToResponse(v)
	return &resp, nil
}

func (s *viajeService) ListarDelCliente(ctx context.Context, usuarioID uuid.UUID) ([]dto.ViajeResponse, error) {
	cl, err := s.clienteRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}
	vs, err := s.repo.ListByCliente(ctx, cl.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ViajeResponse, len(vs))
	for i := range vs {
		resp[i] = viajeToResponse(&vs[i])
	}
	return resp, nil
}

func (s *viajeService) CancelarPorCliente(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, viajeID uuid.UUID, meta RequestMeta) (*dto.ViajeResponse, error) {
	cl, err := s.clienteRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}
	v, err := s.repo.FindByID(ctx, viajeID)
	if err != nil {
		return nil, mapFindErr(err, "Viaje no encontrado")
	}
	// Viajes of other clients report NotFound, never Forbidden.
	if v.ClienteID == nil || *v.ClienteID != cl.ID {
		return nil, apierror.NotFound("Viaje no encontrado")
	}
	return s.cancelar(ctx, v, usuarioID, usuarioEmail, meta)
}

func (s *viajeService) CrearPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, req dto.CrearViajeRequest, meta RequestMeta) (*dto.ViajeResponse, error) {
	remiseriaID, err := s.remiseriaDelCoordinador(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	precio, err := s.tarifa.Estimar(ctx, req.Origen, req.Destino)
	if err != nil {
		return nil, err
	}

	fecha := time.Now()
	if req.FechaHora != nil {
		fecha = *req.FechaHora
	}

	v := &model.Viaje{
		Origen:          req.Origen,
		Destino:         req.Destino,
		Precio:          precio.Precio,
		Fecha:           fecha,
		Estado:          model.ViajePendiente,
		Observaciones:   req.Observaciones,
		Prioridad:       req.Prioridad,
		RemiseriaID:     remiseriaID,
		ClienteNombre:   req.ClienteNombre,
		ClienteTelefono: req.ClienteTelefono,
		ClienteEmail:    req.ClienteEmail,
	}

	// Registered clients may also be booked by phone: the snapshot is taken
	// from their profile when the id is given without contact fields.
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.Validation("clienteId inválido")
		}
		cl, err := s.clienteRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, apierror.Reference("El cliente indicado no existe")
		}
		v.ClienteID = &cl.ID
		if v.ClienteNombre == nil {
			nombre := cl.Nombre + " " + cl.Apellido
			v.ClienteNombre = &nombre
		}
		if v.ClienteTelefono == nil {
			v.ClienteTelefono = &cl.Telefono
		}
		if v.ClienteEmail == nil {
			v.ClienteEmail = &cl.Email
		}
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.track(ctx, usuarioID, usuarioEmail, model.AccionCreateViaje, meta)
	resp := viajeToResponse(v)
	return &resp, nil
}

func (s *viajeService) Asignar(ctx context.Context, usuarioID, viajeID uuid.UUID, req dto.AsignarViajeRequest) (*dto.ViajeResponse, error) {
	remiseriaID, err := s.remiseriaDelCoordinador(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	v, err := s.repo.FindByID(ctx, viajeID)
	if err != nil {
		return nil, mapFindErr(err, "Viaje no encontrado")
	}
	if v.RemiseriaID != remiseriaID {
		return nil, apierror.NotFound("Viaje no encontrado")
	}
	if v.Estado != model.ViajePendiente {
		return nil, apierror.Validation("Solo se pueden asignar viajes pendientes")
	}

	choferID, err := uuid.Parse(req.ChoferID)
	if err != nil {
		return nil, apierror.Validation("choferId inválido")
	}
	ch, err := s.choferRepo.FindByID(ctx, choferID)
	if err != nil {
		return nil, apierror.Reference("El chofer indicado no existe")
	}
	if ch.RemiseriaID != remiseriaID {
		return nil, apierror.Validation("El chofer pertenece a otra remisería")
	}
	if ch.Estado != model.ChoferActivo {
		return nil, apierror.Validation("El chofer no está activo")
	}

	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.Validation("vehiculoId inválido")
	}
	veh, err := s.vehiculoRepo.FindByID(ctx, vehiculoID)
	if err != nil {
		return nil, apierror.Reference("El vehículo indicado no existe")
	}
	if veh.RemiseriaID != remiseriaID {
		return nil, apierror.Validation("El vehículo pertenece a otra remisería")
	}
	if veh.Estado != model.VehiculoActivo {
		return nil, apierror.Validation("El vehículo no está activo")
	}

	if err := s.repo.Asignar(ctx, v.ID, choferID, vehiculoID); err != nil {
		return nil, err
	}
	v.ChoferID = &choferID
	v.VehiculoID = &vehiculoID
	v.Estado = model.ViajeEnCurso

	resp := viajeToResponse(v)
	return &resp, nil
}

func (s *viajeService) Completar(ctx context.Context, usuarioID, viajeID uuid.UUID) (*dto.ViajeResponse, error) {
	remiseriaID, err := s.remiseriaDelCoordinador(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	v, err := s.repo.FindByID(ctx, viajeID)
	if err != nil {
		return nil, mapFindErr(err, "Viaje no encontrado")
	}
	if v.RemiseriaID != remiseriaID {
		return nil, apierror.NotFound("Viaje no encontrado")
	}
	if v.Estado != model.ViajeEnCurso {
		return nil, apierror.Validation("Solo se pueden completar viajes en curso")
	}

	if err := s.repo.UpdateEstado(ctx, v.ID, model.ViajeCompletado); err != nil {
		return nil, err
	}
	v.Estado = model.ViajeCompletado

	resp := viajeToResponse(v)
	return &resp, nil
}

func (s *viajeService) CancelarPorCoordinador(ctx context.Context, usuarioID uuid.UUID, usuarioEmail string, viajeID uuid.UUID, meta RequestMeta) (*dto.ViajeResponse, error) {
	remiseriaID, err := s.remiseriaDelCoordinador(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	v, err := s.repo.FindByID(ctx, viajeID)
	if err != nil {
		return nil, mapFindErr(err, "Viaje no encontrado")
	}
	if v.RemiseriaID != remiseriaID {
		return nil, apierror.NotFound("Viaje no encontrado")
	}
	return s.cancelar(ctx, v, usuarioID, usuarioEmail, meta)
}

// cancelar applies the shared terminal-state rule and records the event.
func (s *viajeService) cancelar(ctx context.Context, v *model.Viaje, usuarioID uuid.UUID, usuarioEmail string, meta RequestMeta) (*dto.ViajeResponse, error) {
	if model.EsTerminalViaje(v.Estado) {
		return nil, apierror.Validation("No se puede cancelar un viaje finalizado")
	}
	if err := s.repo.UpdateEstado(ctx, v.ID, model.ViajeCancelado); err != nil {
		return nil, err
	}
	v.Estado = model.ViajeCancelado

	s.track(ctx, usuarioID, usuarioEmail, model.AccionCancelViaje, meta)
	resp := viajeToResponse(v)
	return &resp, nil
}

func (s *viajeService) remiseriaDelCoordinador(ctx context.Context, usuarioID uuid.UUID) (uuid.UUID, error) {
	co, err := s.coordinadorRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return uuid.Nil, mapFindErr(err, "Coordinador no encontrado")
	}
	return co.RemiseriaID, nil
}

func (s *viajeService) track(ctx context.Context, usuarioID uuid.UUID, email, accion string, meta RequestMeta) {
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

func viajeToResponse(v *model.Viaje) dto.ViajeResponse {
	resp := dto.ViajeResponse{
		ID:              v.ID.String(),
		Origen:          v.Origen,
		Destino:         v.Destino,
		Precio:          v.Precio,
		Fecha:           v.Fecha,
		Estado:          v.Estado,
		Observaciones:   v.Observaciones,
		Prioridad:       v.Prioridad,
		RemiseriaID:     v.RemiseriaID.String(),
		ClienteNombre:   v.ClienteNombre,
		ClienteTelefono: v.ClienteTelefono,
		ClienteEmail:    v.ClienteEmail,
	}
	if v.ClienteID != nil {
		id := v.ClienteID.String()
		resp.ClienteID = &id
	}
	if v.ChoferID != nil {
		id := v.ChoferID.String()
		resp.ChoferID = &id
	}
	if v.VehiculoID != nil {
		id := v.VehiculoID.String()
		resp.VehiculoID = &id
	}
	return resp
}

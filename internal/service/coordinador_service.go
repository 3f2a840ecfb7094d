package service

import (
	"context"
	"fmt"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"
	"appremises/internal/worker"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CoordinadorService interface {
	Listar(ctx context.Context, rol string, usuarioID uuid.UUID) ([]dto.CoordinadorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CoordinadorResponse, error)
	// Crear provisions the dashboard account (Usuario with rol COORDINADOR)
	// together with the profile, atomically, and queues a welcome mail.
	Crear(ctx context.Context, req dto.CrearCoordinadorRequest) (*dto.CoordinadorResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCoordinadorRequest) (*dto.CoordinadorResponse, error)
	ToggleActivo(ctx context.Context, id uuid.UUID) (*dto.CoordinadorResponse, error)
	// Baja soft-deletes: activo=false on profile and linked account.
	Baja(ctx context.Context, id uuid.UUID) error
}

type coordinadorService struct {
	repo          repository.CoordinadorRepository
	usuarioRepo   repository.UsuarioRepository
	duenioRepo    repository.DuenioRepository
	remiseriaRepo repository.RemiseriaRepository
	dispatcher    *worker.Dispatcher
}

func NewCoordinadorService(
	repo repository.CoordinadorRepository,
	usuarioRepo repository.UsuarioRepository,
	duenioRepo repository.DuenioRepository,
	remiseriaRepo repository.RemiseriaRepository,
	dispatcher *worker.Dispatcher,
) CoordinadorService {
	return &coordinadorService{
		repo:          repo,
		usuarioRepo:   usuarioRepo,
		duenioRepo:    duenioRepo,
		remiseriaRepo: remiseriaRepo,
		dispatcher:    dispatcher,
	}
}

func (s *coordinadorService) Listar(ctx context.Context, rol string, usuarioID uuid.UUID) ([]dto.CoordinadorResponse, error) {
	var (
		cos []model.Coordinador
		err error
	)
	if rol == model.RolDuenio {
		duenio, derr := s.duenioRepo.FindByUsuario(ctx, usuarioID)
		if derr != nil {
			return nil, mapFindErr(derr, "Dueño no encontrado")
		}
		cos, err = s.repo.ListByRemiserias(ctx, remiseriaIDs(duenio))
	} else {
		cos, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CoordinadorResponse, len(cos))
	for i := range cos {
		resp[i] = coordinadorToResponse(&cos[i])
	}
	return resp, nil
}

func (s *coordinadorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.CoordinadorResponse, error) {
	co, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Coordinador no encontrado")
	}
	resp := coordinadorToResponse(co)
	return &resp, nil
}

func (s *coordinadorService) Crear(ctx context.Context, req dto.CrearCoordinadorRequest) (*dto.CoordinadorResponse, error) {
	remiseriaID, err := uuid.Parse(req.RemiseriaID)
	if err != nil {
		return nil, apierror.Validation("remiseriaId inválido")
	}
	rem, err := s.remiseriaRepo.FindByID(ctx, remiseriaID)
	if err != nil {
		return nil, apierror.Reference("La remisería indicada no existe")
	}

	if _, err := s.usuarioRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Duplicate("El email ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          model.RolCoordinador,
		Activo:       true,
	}
	co := &model.Coordinador{
		Nombre:      req.Nombre,
		Email:       req.Email,
		Telefono:    req.Telefono,
		Activo:      true,
		RemiseriaID: remiseriaID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		co.UsuarioID = &user.ID
		return s.repo.Create(ctx, tx, co)
	})
	if txErr != nil {
		return nil, mapCreateErr(txErr, "El email ya está registrado")
	}

	if s.dispatcher != nil {
		s.dispatcher.EnqueueEmail(ctx, worker.EmailPayload{
			To:      req.Email,
			Subject: "Bienvenido al panel de coordinación",
			Body: fmt.Sprintf("Hola %s,\n\nYa podés ingresar al panel de coordinación de %s con este email.\n\nAppRemises",
				req.Nombre, rem.NombreFantasia),
		})
	}

	resp := coordinadorToResponse(co)
	return &resp, nil
}

func (s *coordinadorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCoordinadorRequest) (*dto.CoordinadorResponse, error) {
	co, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Coordinador no encontrado")
	}

	if req.Nombre != nil {
		co.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		co.Telefono = *req.Telefono
	}
	if req.Password != nil && co.UsuarioID != nil {
		user, err := s.usuarioRepo.FindByID(ctx, *co.UsuarioID)
		if err != nil {
			return nil, mapFindErr(err, "Usuario no encontrado")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		if err := s.usuarioRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, co); err != nil {
		return nil, err
	}
	resp := coordinadorToResponse(co)
	return &resp, nil
}

func (s *coordinadorService) ToggleActivo(ctx context.Context, id uuid.UUID) (*dto.CoordinadorResponse, error) {
	co, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Coordinador no encontrado")
	}
	nuevo := !co.Activo
	if err := s.repo.SetActivo(ctx, co.ID, nuevo); err != nil {
		return nil, err
	}
	if co.UsuarioID != nil {
		if err := s.usuarioRepo.SetActivo(ctx, *co.UsuarioID, nuevo); err != nil {
			return nil, err
		}
	}
	co.Activo = nuevo
	resp := coordinadorToResponse(co)
	return &resp, nil
}

func (s *coordinadorService) Baja(ctx context.Context, id uuid.UUID) error {
	co, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapFindErr(err, "Coordinador no encontrado")
	}
	if err := s.repo.SetActivo(ctx, co.ID, false); err != nil {
		return err
	}
	if co.UsuarioID != nil {
		return s.usuarioRepo.SetActivo(ctx, *co.UsuarioID, false)
	}
	return nil
}

func remiseriaIDs(d *model.Duenio) []uuid.UUID {
	ids := make([]uuid.UUID, len(d.Remiserias))
	for i, r := range d.Remiserias {
		ids[i] = r.ID
	}
	return ids
}

func coordinadorToResponse(co *model.Coordinador) dto.CoordinadorResponse {
	return dto.CoordinadorResponse{
		ID:          co.ID.String(),
		Nombre:      co.Nombre,
		Email:       co.Email,
		Telefono:    co.Telefono,
		Activo:      co.Activo,
		RemiseriaID: co.RemiseriaID.String(),
	}
}

package service

import (
	"context"

	"appremises/internal/apierror"
	"appremises/internal/authz"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type DuenioService interface {
	Listar(ctx context.Context) ([]dto.DuenioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.DuenioResponse, error)
	// Crear is the ADMIN-side alta; owner self-signup goes through auth.
	Crear(ctx context.Context, req dto.CrearDuenioRequest) (*dto.DuenioResponse, error)
	// Actualizar applies the field-level write matrix: a DUENIO may only
	// touch their own contact fields, ADMIN anything. All-or-nothing.
	Actualizar(ctx context.Context, id uuid.UUID, rol string, usuarioID uuid.UUID, req dto.ActualizarDuenioRequest) (*dto.DuenioResponse, error)
	// ToggleActivo flips the linked Usuario's activo flag (owners are
	// deactivated, never hard-deleted).
	ToggleActivo(ctx context.Context, id uuid.UUID) (*dto.DuenioResponse, error)
}

type duenioService struct {
	repo        repository.DuenioRepository
	usuarioRepo repository.UsuarioRepository
}

func NewDuenioService(repo repository.DuenioRepository, usuarioRepo repository.UsuarioRepository) DuenioService {
	return &duenioService{repo: repo, usuarioRepo: usuarioRepo}
}

func (s *duenioService) Listar(ctx context.Context) ([]dto.DuenioResponse, error) {
	duenios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DuenioResponse, len(duenios))
	for i := range duenios {
		resp[i] = duenioToResponse(&duenios[i])
	}
	return resp, nil
}

func (s *duenioService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.DuenioResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Dueño no encontrado")
	}
	resp := duenioToResponse(d)
	return &resp, nil
}

func (s *duenioService) Crear(ctx context.Context, req dto.CrearDuenioRequest) (*dto.DuenioResponse, error) {
	if _, err := s.usuarioRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Duplicate("El email ya está registrado")
	}
	if _, err := s.repo.FindByDNI(ctx, req.DNI); err == nil {
		return nil, apierror.Duplicate("El DNI ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          model.RolDuenio,
		Activo:       true,
	}
	d := &model.Duenio{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		DNI:      &req.DNI,
	}

	txErr := runTx(ctx, s.usuarioRepo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		d.UsuarioID = user.ID
		return s.repo.Create(ctx, tx, d)
	})
	if txErr != nil {
		return nil, mapCreateErr(txErr, "El email ya está registrado")
	}

	d.Usuario = user
	resp := duenioToResponse(d)
	return &resp, nil
}

func (s *duenioService) Actualizar(ctx context.Context, id uuid.UUID, rol string, usuarioID uuid.UUID, req dto.ActualizarDuenioRequest) (*dto.DuenioResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Dueño no encontrado")
	}

	// A dueño can only edit their own record; existence is not leaked.
	if rol == model.RolDuenio && d.UsuarioID != usuarioID {
		return nil, apierror.NotFound("Dueño no encontrado")
	}

	if err := authz.CamposPermitidos(authz.EntidadDuenio, rol, req.CamposSolicitados()); err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		d.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		d.Telefono = *req.Telefono
	}
	if req.DNI != nil {
		d.DNI = req.DNI
	}

	user, err := s.usuarioRepo.FindByID(ctx, d.UsuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Usuario no encontrado")
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Activo != nil {
		user.Activo = *req.Activo
	}

	if err := s.usuarioRepo.Update(ctx, user); err != nil {
		return nil, mapCreateErr(err, "El email ya está registrado")
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, mapCreateErr(err, "El DNI ya está registrado")
	}

	d.Usuario = user
	resp := duenioToResponse(d)
	return &resp, nil
}

func (s *duenioService) ToggleActivo(ctx context.Context, id uuid.UUID) (*dto.DuenioResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Dueño no encontrado")
	}
	user, err := s.usuarioRepo.FindByID(ctx, d.UsuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Usuario no encontrado")
	}
	if err := s.usuarioRepo.SetActivo(ctx, user.ID, !user.Activo); err != nil {
		return nil, err
	}
	user.Activo = !user.Activo
	d.Usuario = user
	resp := duenioToResponse(d)
	return &resp, nil
}

func duenioToResponse(d *model.Duenio) dto.DuenioResponse {
	remiserias := make([]string, len(d.Remiserias))
	for i, r := range d.Remiserias {
		remiserias[i] = r.ID.String()
	}
	resp := dto.DuenioResponse{
		ID:         d.ID.String(),
		Nombre:     d.Nombre,
		Telefono:   d.Telefono,
		DNI:        d.DNI,
		Remiserias: remiserias,
	}
	if d.Usuario != nil {
		resp.Email = d.Usuario.Email
		resp.Activo = d.Usuario.Activo
	}
	return resp
}

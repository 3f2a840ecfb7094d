package service

import (
	"context"

	"appremises/internal/apierror"
	"appremises/internal/authz"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RemiseriaService interface {
	// Listar scopes results: ADMIN sees all, DUENIO only their associated
	// remiserías.
	Listar(ctx context.Context, rol string, usuarioID uuid.UUID) ([]dto.RemiseriaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID, rol string, usuarioID uuid.UUID) (*dto.RemiseriaResponse, error)
	Crear(ctx context.Context, req dto.CrearRemiseriaRequest) (*dto.RemiseriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, rol string, usuarioID uuid.UUID, req dto.ActualizarRemiseriaRequest) (*dto.RemiseriaResponse, error)
	// Eliminar hard-deletes, guarded: it fails while coordinadores,
	// choferes, vehículos or viajes still reference the remisería.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type remiseriaService struct {
	repo       repository.RemiseriaRepository
	duenioRepo repository.DuenioRepository
}

func NewRemiseriaService(repo repository.RemiseriaRepository, duenioRepo repository.DuenioRepository) RemiseriaService {
	return &remiseriaService{repo: repo, duenioRepo: duenioRepo}
}

func (s *remiseriaService) Listar(ctx context.Context, rol string, usuarioID uuid.UUID) ([]dto.RemiseriaResponse, error) {
	var (
		rems []model.Remiseria
		err  error
	)
	if rol == model.RolDuenio {
		duenio, derr := s.duenioRepo.FindByUsuario(ctx, usuarioID)
		if derr != nil {
			return nil, mapFindErr(derr, "Dueño no encontrado")
		}
		rems, err = s.repo.ListByDuenio(ctx, duenio.ID)
	} else {
		rems, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RemiseriaResponse, len(rems))
	for i := range rems {
		resp[i] = remiseriaToResponse(&rems[i])
	}
	return resp, nil
}

func (s *remiseriaService) ObtenerPorID(ctx context.Context, id uuid.UUID, rol string, usuarioID uuid.UUID) (*dto.RemiseriaResponse, error) {
	rem, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Remisería no encontrada")
	}
	if rol == model.RolDuenio && !s.asociada(ctx, rem, usuarioID) {
		return nil, apierror.NotFound("Remisería no encontrada")
	}
	resp := remiseriaToResponse(rem)
	return &resp, nil
}

func (s *remiseriaService) Crear(ctx context.Context, req dto.CrearRemiseriaRequest) (*dto.RemiseriaResponse, error) {
	duenios, err := s.resolverDuenios(ctx, req.DuenioIDs)
	if err != nil {
		return nil, err
	}

	rem := &model.Remiseria{
		NombreFantasia: req.NombreFantasia,
		RazonSocial:    req.RazonSocial,
		CUIT:           req.CUIT,
		Direccion:      req.Direccion,
		Telefono:       req.Telefono,
		Estado:         true,
		Duenios:        duenios,
	}

	// Remisería + dueño associations in one transaction.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, rem)
	})
	if txErr != nil {
		return nil, mapCreateErr(txErr, "El CUIT ya está registrado")
	}

	resp := remiseriaToResponse(rem)
	return &resp, nil
}

func (s *remiseriaService) Actualizar(ctx context.Context, id uuid.UUID, rol string, usuarioID uuid.UUID, req dto.ActualizarRemiseriaRequest) (*dto.RemiseriaResponse, error) {
	rem, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapFindErr(err, "Remisería no encontrada")
	}

	if rol == model.RolDuenio && !s.asociada(ctx, rem, usuarioID) {
		return nil, apierror.NotFound("Remisería no encontrada")
	}

	if err := authz.CamposPermitidos(authz.EntidadRemiseria, rol, req.CamposSolicitados()); err != nil {
		return nil, err
	}

	if req.NombreFantasia != nil {
		rem.NombreFantasia = *req.NombreFantasia
	}
	if req.RazonSocial != nil {
		rem.RazonSocial = *req.RazonSocial
	}
	if req.CUIT != nil {
		rem.CUIT = *req.CUIT
	}
	if req.Direccion != nil {
		rem.Direccion = *req.Direccion
	}
	if req.Telefono != nil {
		rem.Telefono = *req.Telefono
	}
	if req.Estado != nil {
		rem.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, rem); err != nil {
		return nil, mapCreateErr(err, "El CUIT ya está registrado")
	}

	if req.DuenioIDs != nil {
		duenios, err := s.resolverDuenios(ctx, *req.DuenioIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceDuenios(ctx, rem, duenios); err != nil {
			return nil, err
		}
		rem.Duenios = duenios
	}

	resp := remiseriaToResponse(rem)
	return &resp, nil
}

func (s *remiseriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapFindErr(err, "Remisería no encontrada")
	}
	refs, err := s.repo.CountReferencias(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apierror.Validation("No se puede eliminar la remisería: tiene coordinadores, choferes, vehículos o viajes asociados")
	}
	return s.repo.Delete(ctx, id)
}

// asociada reports whether the usuario's dueño profile is linked to rem.
func (s *remiseriaService) asociada(ctx context.Context, rem *model.Remiseria, usuarioID uuid.UUID) bool {
	duenio, err := s.duenioRepo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return false
	}
	for _, d := range rem.Duenios {
		if d.ID == duenio.ID {
			return true
		}
	}
	return false
}

func (s *remiseriaService) resolverDuenios(ctx context.Context, ids []string) ([]model.Duenio, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	uids := make([]uuid.UUID, len(ids))
	for i, raw := range ids {
		uid, err := uuid.Parse(raw)
		if err != nil {
			return nil, apierror.Validation("duenioIds contiene un id inválido")
		}
		uids[i] = uid
	}
	duenios, err := s.duenioRepo.FindByIDs(ctx, uids)
	if err != nil {
		return nil, err
	}
	if len(duenios) != len(uids) {
		return nil, apierror.Reference("Alguno de los dueños indicados no existe")
	}
	return duenios, nil
}

func remiseriaToResponse(rem *model.Remiseria) dto.RemiseriaResponse {
	duenioIDs := make([]string, len(rem.Duenios))
	for i, d := range rem.Duenios {
		duenioIDs[i] = d.ID.String()
	}
	return dto.RemiseriaResponse{
		ID:             rem.ID.String(),
		NombreFantasia: rem.NombreFantasia,
		RazonSocial:    rem.RazonSocial,
		CUIT:           rem.CUIT,
		Direccion:      rem.Direccion,
		Telefono:       rem.Telefono,
		Estado:         rem.Estado,
		DuenioIDs:      duenioIDs,
	}
}

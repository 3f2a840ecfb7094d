package service

import (
	"context"
	"math/rand"
	"time"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ClienteService interface {
	// ObtenerPerfil resolves the CLIENTE profile of the authenticated user.
	ObtenerPerfil(ctx context.Context, usuarioID uuid.UUID) (*dto.ClienteResponse, error)
	ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	// Ubicacion returns a simulated live-tracking point for one of the
	// client's viajes in EN_CURSO.
	Ubicacion(ctx context.Context, usuarioID, viajeID uuid.UUID) (*dto.UbicacionResponse, error)
}

type clienteService struct {
	repo        repository.ClienteRepository
	usuarioRepo repository.UsuarioRepository
	viajeRepo   repository.ViajeRepository
}

func NewClienteService(
	repo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	viajeRepo repository.ViajeRepository,
) ClienteService {
	return &clienteService{repo: repo, usuarioRepo: usuarioRepo, viajeRepo: viajeRepo}
}

func (s *clienteService) ObtenerPerfil(ctx context.Context, usuarioID uuid.UUID) (*dto.ClienteResponse, error) {
	cl, err := s.repo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}
	resp := clienteToResponse(cl)
	return &resp, nil
}

func (s *clienteService) ActualizarPerfil(ctx context.Context, usuarioID uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cl, err := s.repo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}

	if req.Telefono != nil {
		cl.Telefono = *req.Telefono
	}
	if req.Direccion != nil {
		cl.Direccion = *req.Direccion
	}

	// Email and password live on the Usuario account.
	if req.Email != nil || req.Password != nil {
		u, err := s.usuarioRepo.FindByID(ctx, usuarioID)
		if err != nil {
			return nil, mapFindErr(err, "Usuario no encontrado")
		}
		if req.Email != nil {
			u.Email = *req.Email
			cl.Email = *req.Email
		}
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
			if err != nil {
				return nil, err
			}
			u.PasswordHash = string(hash)
		}
		if err := s.usuarioRepo.Update(ctx, u); err != nil {
			return nil, mapCreateErr(err, "El email ya está registrado")
		}
	}

	if err := s.repo.Update(ctx, cl); err != nil {
		return nil, err
	}
	resp := clienteToResponse(cl)
	return &resp, nil
}

func (s *clienteService) Ubicacion(ctx context.Context, usuarioID, viajeID uuid.UUID) (*dto.UbicacionResponse, error) {
	cl, err := s.repo.FindByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, mapFindErr(err, "Cliente no encontrado")
	}
	v, err := s.viajeRepo.FindByID(ctx, viajeID)
	if err != nil {
		return nil, mapFindErr(err, "Viaje no encontrado")
	}
	// Ownership failures report NotFound so foreign viaje ids are not leaked.
	if v.ClienteID == nil || *v.ClienteID != cl.ID {
		return nil, apierror.NotFound("Viaje no encontrado")
	}
	if v.Estado != model.ViajeEnCurso {
		return nil, apierror.Validation("El viaje no está en curso")
	}

	lat, lng := puntoSimulado()
	return &dto.UbicacionResponse{
		ViajeID:   v.ID.String(),
		Latitud:   lat,
		Longitud:  lng,
		Rumbo:     math360(),
		Simulado:  true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// puntoSimulado generates a coordinate within a few km of downtown
// Buenos Aires (-34.60, -58.38).
func puntoSimulado() (float64, float64) {
	lat := -34.60 + (rand.Float64()-0.5)*0.08
	lng := -58.38 + (rand.Float64()-0.5)*0.08
	return lat, lng
}

func math360() float64 {
	return rand.Float64() * 360
}

func clienteToResponse(cl *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:              cl.ID.String(),
		Nombre:          cl.Nombre,
		Apellido:        cl.Apellido,
		DNI:             cl.DNI,
		Telefono:        cl.Telefono,
		Email:           cl.Email,
		Direccion:       cl.Direccion,
		FechaNacimiento: cl.FechaNacimiento,
		Genero:          cl.Genero,
		Activo:          cl.Activo,
	}
}

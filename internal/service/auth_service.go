package service

import (
	"context"
	"time"

	"appremises/internal/apierror"
	"appremises/internal/config"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/repository"
	"appremises/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RequestMeta carries the client fingerprint attached to telemetry events.
type RequestMeta struct {
	IPAddress *string
	UserAgent *string
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest, meta RequestMeta) (*dto.LoginResponse, error)
	// Register creates a DUENIO account (public owner signup).
	Register(ctx context.Context, req dto.RegisterRequest, meta RequestMeta) (*dto.LoginResponse, error)
	// RegisterCliente creates a CLIENTE account from the booking app.
	RegisterCliente(ctx context.Context, req dto.RegisterClienteRequest, meta RequestMeta) (*dto.LoginResponse, error)
	// Refresh issues a new access token only; the refresh token is not rotated.
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	duenioRepo  repository.DuenioRepository
	clienteRepo repository.ClienteRepository
	dispatcher  *worker.Dispatcher
	cfg         *config.Config
}

func NewAuthService(
	usuarioRepo repository.UsuarioRepository,
	duenioRepo repository.DuenioRepository,
	clienteRepo repository.ClienteRepository,
	dispatcher *worker.Dispatcher,
	cfg *config.Config,
) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		duenioRepo:  duenioRepo,
		clienteRepo: clienteRepo,
		dispatcher:  dispatcher,
		cfg:         cfg,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest, meta RequestMeta) (*dto.LoginResponse, error) {
	// Same message for unknown email, inactive account and wrong password —
	// no user enumeration.
	user, err := s.usuarioRepo.FindByEmail(ctx, req.Email)
	if err != nil || !user.Activo {
		return nil, apierror.Unauthorized("Credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Credenciales inválidas")
	}

	resp, err := s.buildLoginResponse(user)
	if err != nil {
		return nil, err
	}

	s.trackUsage(ctx, user, model.AccionLogin, meta)
	return resp, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest, meta RequestMeta) (*dto.LoginResponse, error) {
	// Friendly pre-checks; the unique indexes remain the authority under
	// concurrent registration.
	if _, err := s.usuarioRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Duplicate("El email ya está registrado")
	}
	// DNI is optional at signup; when absent the profile keeps a NULL dni and
	// the unique index does not apply.
	var dni *string
	if req.DNI != "" {
		if _, err := s.duenioRepo.FindByDNI(ctx, req.DNI); err == nil {
			return nil, apierror.Duplicate("El DNI ya está registrado")
		}
		dni = &req.DNI
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

	// User + profile in one transaction — a partial row never exists.
	txErr := runTx(ctx, s.usuarioRepo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		return s.duenioRepo.Create(ctx, tx, &model.Duenio{
			Nombre:    req.Nombre,
			Telefono:  req.Telefono,
			DNI:       dni,
			UsuarioID: user.ID,
		})
	})
	if txErr != nil {
		return nil, mapCreateErr(txErr, "El email ya está registrado")
	}

	resp, err := s.buildLoginResponse(user)
	if err != nil {
		return nil, err
	}

	s.trackUsage(ctx, user, model.AccionRegister, meta)
	return resp, nil
}

func (s *authService) RegisterCliente(ctx context.Context, req dto.RegisterClienteRequest, meta RequestMeta) (*dto.LoginResponse, error) {
	if _, err := s.usuarioRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Duplicate("El email ya está registrado")
	}
	if _, err := s.clienteRepo.FindByDNI(ctx, req.DNI); err == nil {
		return nil, apierror.Duplicate("El DNI ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          model.RolCliente,
		Activo:       true,
	}

	txErr := runTx(ctx, s.usuarioRepo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		return s.clienteRepo.Create(ctx, tx, &model.Cliente{
			Nombre:          req.Nombre,
			Apellido:        req.Apellido,
			DNI:             req.DNI,
			Telefono:        req.Telefono,
			Email:           req.Email,
			Direccion:       req.Direccion,
			FechaNacimiento: req.FechaNacimiento,
			Genero:          req.Genero,
			Activo:          true,
			UsuarioID:       user.ID,
		})
	})
	if txErr != nil {
		return nil, mapCreateErr(txErr, "El email ya está registrado")
	}

	resp, err := s.buildLoginResponse(user)
	if err != nil {
		return nil, err
	}

	s.trackUsage(ctx, user, model.AccionRegister, meta)
	return resp, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Unauthorized("Refresh token inválido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.Unauthorized("Refresh token inválido o expirado")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, apierror.Unauthorized("Refresh token inválido o expirado")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apierror.Unauthorized("Refresh token inválido o expirado")
	}

	user, err := s.usuarioRepo.FindByID(ctx, uid)
	if err != nil || !user.Activo {
		return nil, apierror.Unauthorized("Usuario no encontrado o inactivo")
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTAccessMinutes * 60,
	}, nil
}

func (s *authService) buildLoginResponse(user *model.Usuario) (*dto.LoginResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTAccessMinutes * 60,
		User: dto.UsuarioResponse{
			ID:     user.ID.String(),
			Email:  user.Email,
			Rol:    user.Rol,
			Activo: user.Activo,
		},
	}, nil
}

func (s *authService) generateAccessToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"rol":     user.Rol,
		"exp":     now.Add(time.Duration(s.cfg.JWTAccessMinutes) * time.Minute).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) generateRefreshToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     now.Add(time.Duration(s.cfg.JWTRefreshHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTRefreshSecret))
}

func (s *authService) trackUsage(ctx context.Context, user *model.Usuario, accion string, meta RequestMeta) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.TrackUsage(ctx, worker.UsagePayload{
		UsuarioID:    user.ID,
		UsuarioEmail: user.Email,
		Accion:       accion,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	})
}

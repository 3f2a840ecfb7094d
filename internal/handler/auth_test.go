package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"appremises/internal/config"
	"appremises/internal/dto"
	"appremises/internal/model"
	"appremises/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Minimal in-memory repos backing the auth flow end to end through the
// HTTP layer, envelope included.

type memUsuarioRepo struct{ users map[uuid.UUID]*model.Usuario }

func (r *memUsuarioRepo) Create(_ context.Context, _ *gorm.DB, u *model.Usuario) error {
	u.ID = uuid.New()
	r.users[u.ID] = u
	return nil
}

func (r *memUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUsuarioRepo) SetActivo(_ context.Context, id uuid.UUID, activo bool) error {
	if u, ok := r.users[id]; ok {
		u.Activo = activo
	}
	return nil
}

func (r *memUsuarioRepo) DB() *gorm.DB { return nil }

type memDuenioRepo struct{ duenios map[uuid.UUID]*model.Duenio }

func (r *memDuenioRepo) Create(_ context.Context, _ *gorm.DB, d *model.Duenio) error {
	d.ID = uuid.New()
	r.duenios[d.ID] = d
	return nil
}

func (r *memDuenioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Duenio, error) {
	d, ok := r.duenios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *memDuenioRepo) FindByDNI(_ context.Context, dni string) (*model.Duenio, error) {
	for _, d := range r.duenios {
		if d.DNI != nil && *d.DNI == dni {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memDuenioRepo) FindByUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Duenio, error) {
	for _, d := range r.duenios {
		if d.UsuarioID == usuarioID {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memDuenioRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Duenio, error) {
	var out []model.Duenio
	for _, id := range ids {
		if d, ok := r.duenios[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memDuenioRepo) List(_ context.Context) ([]model.Duenio, error) { return nil, nil }

func (r *memDuenioRepo) Update(_ context.Context, d *model.Duenio) error {
	r.duenios[d.ID] = d
	return nil
}

type memClienteRepo struct{ clientes map[uuid.UUID]*model.Cliente }

func (r *memClienteRepo) Create(_ context.Context, _ *gorm.DB, cl *model.Cliente) error {
	cl.ID = uuid.New()
	r.clientes[cl.ID] = cl
	return nil
}

func (r *memClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	cl, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cl, nil
}

func (r *memClienteRepo) FindByDNI(_ context.Context, dni string) (*model.Cliente, error) {
	for _, cl := range r.clientes {
		if cl.DNI == dni {
			return cl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memClienteRepo) FindByUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Cliente, error) {
	for _, cl := range r.clientes {
		if cl.UsuarioID == usuarioID {
			return cl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memClienteRepo) Update(_ context.Context, cl *model.Cliente) error {
	r.clientes[cl.ID] = cl
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:        "test_jwt_secret_32_chars_minimum!",
		JWTRefreshSecret: "test_refresh_secret_32_chars_min!",
		JWTAccessMinutes: 15,
		JWTRefreshHours:  168,
	}
	svc := service.NewAuthService(
		&memUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)},
		&memDuenioRepo{duenios: make(map[uuid.UUID]*model.Duenio)},
		&memClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)},
		nil, cfg,
	)
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_FlujoCompleto(t *testing.T) {
	r := newAuthRouter()
	// dni is optional at signup
	payload := map[string]string{
		"email": "a@b.com", "password": "secret1",
		"nombre": "Ana", "telefono": "12345678",
	}

	w := postJSON(t, r, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, model.RolDuenio, resp.User.Rol)
	assert.NotEmpty(t, resp.AccessToken)

	// The same registration again fails with the duplicate message.
	w = postJSON(t, r, "/api/auth/register", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "El email ya está registrado", env.Error)

	// And login with the created credentials works.
	w = postJSON(t, r, "/api/auth/login", map[string]string{"email": "a@b.com", "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterEndpoint_ValidacionDeCampos(t *testing.T) {
	r := newAuthRouter()

	// email inválido y password corta
	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"email": "no-es-email", "password": "123",
		"nombre": "Ana", "telefono": "12345678", "dni": "30111222",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "Datos inválidos")
}

func TestLoginEndpoint_JSONInvalido(t *testing.T) {
	r := newAuthRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON inválido")
}

package service

import (
	"context"
	"testing"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDuenioFixture(t *testing.T) (DuenioService, *stubDuenioRepo, *stubUsuarioRepo, *model.Duenio) {
	t.Helper()
	duenios := newStubDuenioRepo()
	usuarios := newStubUsuarioRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("original1"), 12)
	require.NoError(t, err)
	u := &model.Usuario{Email: "duenio@remises.test", PasswordHash: string(hash), Rol: model.RolDuenio, Activo: true}
	require.NoError(t, usuarios.Create(context.Background(), nil, u))

	dni := "25111222"
	d := &model.Duenio{Nombre: "Carlos", Telefono: "1199887766", DNI: &dni, UsuarioID: u.ID}
	require.NoError(t, duenios.Create(context.Background(), nil, d))

	return NewDuenioService(duenios, usuarios), duenios, usuarios, d
}

func TestActualizarDuenio_SelfUpdateCamposPermitidos(t *testing.T) {
	svc, _, usuarios, d := newDuenioFixture(t)

	tel := "1100001111"
	email := "nuevo@remises.test"
	resp, err := svc.Actualizar(context.Background(), d.ID, model.RolDuenio, d.UsuarioID, dto.ActualizarDuenioRequest{
		Telefono: &tel, Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, "1100001111", resp.Telefono)

	u, err := usuarios.FindByID(context.Background(), d.UsuarioID)
	require.NoError(t, err)
	assert.Equal(t, "nuevo@remises.test", u.Email)
}

func TestActualizarDuenio_CampoRestringidoRechazaTodo(t *testing.T) {
	svc, duenios, _, d := newDuenioFixture(t)

	// nombre is outside the self-update set: the whole request fails, the
	// allowed telefono change included.
	tel := "1100002222"
	nombre := "Otro Nombre"
	_, err := svc.Actualizar(context.Background(), d.ID, model.RolDuenio, d.UsuarioID, dto.ActualizarDuenioRequest{
		Telefono: &tel, Nombre: &nombre,
	})
	require.Error(t, err)
	apiErr := err.(*apierror.APIError)
	assert.Equal(t, 403, apiErr.Status)
	assert.Contains(t, apiErr.Mensaje, "nombre")

	stored, err := duenios.FindByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", stored.Nombre)
	assert.Equal(t, "1199887766", stored.Telefono, "no debe haber actualización parcial")
}

func TestActualizarDuenio_AdminPuedeTodo(t *testing.T) {
	svc, duenios, _, d := newDuenioFixture(t)

	nombre := "Renombrado"
	activo := false
	_, err := svc.Actualizar(context.Background(), d.ID, model.RolAdmin, uuid.New(), dto.ActualizarDuenioRequest{
		Nombre: &nombre, Activo: &activo,
	})
	require.NoError(t, err)

	stored, _ := duenios.FindByID(context.Background(), d.ID)
	assert.Equal(t, "Renombrado", stored.Nombre)
}

func TestActualizarDuenio_AjenoEsNotFound(t *testing.T) {
	svc, _, _, d := newDuenioFixture(t)

	tel := "1100003333"
	_, err := svc.Actualizar(context.Background(), d.ID, model.RolDuenio, uuid.New(), dto.ActualizarDuenioRequest{
		Telefono: &tel,
	})
	require.Error(t, err)
	assert.Equal(t, 404, err.(*apierror.APIError).Status)
}

func TestToggleActivoDuenio_FlipBooleano(t *testing.T) {
	svc, _, usuarios, d := newDuenioFixture(t)

	resp, err := svc.ToggleActivo(context.Background(), d.ID)
	require.NoError(t, err)
	assert.False(t, resp.Activo)

	u, _ := usuarios.FindByID(context.Background(), d.UsuarioID)
	assert.False(t, u.Activo)

	resp, err = svc.ToggleActivo(context.Background(), d.ID)
	require.NoError(t, err)
	assert.True(t, resp.Activo)
}

func TestCrearDuenio_PorAdmin(t *testing.T) {
	svc, _, usuarios, _ := newDuenioFixture(t)

	resp, err := svc.Crear(context.Background(), dto.CrearDuenioRequest{
		Nombre: "Nueva Dueña", Telefono: "1144332211", DNI: "26999888",
		Email: "nueva@remises.test", Password: "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nueva Dueña", resp.Nombre)
	assert.True(t, resp.Activo)

	u, err := usuarios.FindByEmail(context.Background(), "nueva@remises.test")
	require.NoError(t, err)
	assert.Equal(t, model.RolDuenio, u.Rol)
}

package authz

import (
	"testing"

	"appremises/internal/apierror"
	"appremises/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamposPermitidos_AdminSinRestricciones(t *testing.T) {
	err := CamposPermitidos(EntidadDuenio, model.RolAdmin, []string{"nombre", "dni", "activo", "password"})
	assert.NoError(t, err)
}

func TestCamposPermitidos_DuenioSelfUpdate(t *testing.T) {
	err := CamposPermitidos(EntidadDuenio, model.RolDuenio, []string{"telefono", "email", "password"})
	assert.NoError(t, err)
}

func TestCamposPermitidos_UnCampoProhibidoRechazaTodo(t *testing.T) {
	err := CamposPermitidos(EntidadDuenio, model.RolDuenio, []string{"telefono", "nombre"})
	require.Error(t, err)

	apiErr, ok := err.(*apierror.APIError)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.Status)
	assert.Contains(t, apiErr.Mensaje, "nombre")
	assert.NotContains(t, apiErr.Mensaje, "telefono")
}

func TestCamposPermitidos_RemiseriaPorDuenio(t *testing.T) {
	assert.NoError(t, CamposPermitidos(EntidadRemiseria, model.RolDuenio, []string{"direccion", "telefono"}))

	err := CamposPermitidos(EntidadRemiseria, model.RolDuenio, []string{"cuit"})
	require.Error(t, err)
	assert.Equal(t, 403, err.(*apierror.APIError).Status)
}

func TestCamposPermitidos_RolSinEntradaEnLaMatriz(t *testing.T) {
	err := CamposPermitidos(EntidadDuenio, model.RolCoordinador, []string{"telefono"})
	require.Error(t, err)
	assert.Equal(t, 403, err.(*apierror.APIError).Status)
}

func TestCamposPermitidos_ListaVacia(t *testing.T) {
	assert.NoError(t, CamposPermitidos(EntidadDuenio, model.RolDuenio, nil))
}

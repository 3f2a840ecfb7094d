package service

import (
	"context"
	"testing"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viajeFixture struct {
	svc        ViajeService
	viajes     *stubViajeRepo
	clientes   *stubClienteRepo
	coords     *stubCoordinadorRepo
	choferes   *stubChoferRepo
	vehiculos  *stubVehiculoRepo
	remiserias *stubRemiseriaRepo
}

func newViajeFixture() *viajeFixture {
	viajes := newStubViajeRepo()
	clientes := newStubClienteRepo()
	coords := newStubCoordinadorRepo()
	choferes := newStubChoferRepo()
	vehiculos := newStubVehiculoRepo()
	remiserias := newStubRemiseriaRepo(viajes)
	svc := NewViajeService(viajes, clientes, coords, choferes, vehiculos, remiserias, NewTarifaService(nil), nil)
	return &viajeFixture{
		svc: svc, viajes: viajes, clientes: clientes, coords: coords,
		choferes: choferes, vehiculos: vehiculos, remiserias: remiserias,
	}
}

func (f *viajeFixture) seedRemiseria(activa bool) *model.Remiseria {
	rem := &model.Remiseria{NombreFantasia: "Remis Centro", CUIT: uuid.NewString(), Estado: activa}
	_ = f.remiserias.Create(context.Background(), nil, rem)
	return rem
}

func (f *viajeFixture) seedCliente() *model.Cliente {
	cl := &model.Cliente{
		Nombre: "Laura", Apellido: "Paz", DNI: uuid.NewString(),
		Telefono: "1144556677", Email: "laura@pax.test", UsuarioID: uuid.New(),
	}
	_ = f.clientes.Create(context.Background(), nil, cl)
	return cl
}

func (f *viajeFixture) seedCoordinador(remiseriaID uuid.UUID) *model.Coordinador {
	uid := uuid.New()
	co := &model.Coordinador{
		Nombre: "Coord", Email: uuid.NewString() + "@coord.test",
		Activo: true, RemiseriaID: remiseriaID, UsuarioID: &uid,
	}
	_ = f.coords.Create(context.Background(), nil, co)
	return co
}

func TestSolicitarViaje_PendienteSinAsignar(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	cl := f.seedCliente()

	resp, err := f.svc.Solicitar(context.Background(), cl.UsuarioID, "laura@pax.test", dto.SolicitarViajeRequest{
		Origen: "Av. Siempre Viva 742", Destino: "Terminal de Ómnibus",
	}, RequestMeta{})
	require.NoError(t, err)

	assert.Equal(t, model.ViajePendiente, resp.Estado)
	assert.Nil(t, resp.ChoferID)
	assert.Nil(t, resp.VehiculoID)
	assert.Equal(t, rem.ID.String(), resp.RemiseriaID)

	// Contact snapshot from the profile at creation time.
	require.NotNil(t, resp.ClienteNombre)
	assert.Equal(t, "Laura Paz", *resp.ClienteNombre)
	require.NotNil(t, resp.ClienteTelefono)
	assert.Equal(t, "1144556677", *resp.ClienteTelefono)

	// Price = base 500 + [5,25) km * 50.
	assert.True(t, resp.Precio.GreaterThanOrEqual(decimal.NewFromInt(750)))
	assert.True(t, resp.Precio.LessThan(decimal.NewFromInt(1750)))
}

func TestSolicitarViaje_EligeRemiseriaMenosCargada(t *testing.T) {
	f := newViajeFixture()
	cargada := f.seedRemiseria(true)
	libre := f.seedRemiseria(true)
	cl := f.seedCliente()

	for i := 0; i < 3; i++ {
		_ = f.viajes.Create(context.Background(), &model.Viaje{
			Origen: "a", Destino: "b", Estado: model.ViajePendiente, RemiseriaID: cargada.ID,
		})
	}

	resp, err := f.svc.Solicitar(context.Background(), cl.UsuarioID, "laura@pax.test", dto.SolicitarViajeRequest{
		Origen: "Plaza Mayo", Destino: "Retiro",
	}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, libre.ID.String(), resp.RemiseriaID)
}

func TestSolicitarViaje_SinRemiseriasActivas(t *testing.T) {
	f := newViajeFixture()
	f.seedRemiseria(false)
	cl := f.seedCliente()

	_, err := f.svc.Solicitar(context.Background(), cl.UsuarioID, "laura@pax.test", dto.SolicitarViajeRequest{
		Origen: "Plaza Mayo", Destino: "Retiro",
	}, RequestMeta{})
	require.Error(t, err)
	apiErr := err.(*apierror.APIError)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "No hay remiserías disponibles para tomar el viaje", apiErr.Mensaje)
}

func TestCancelarPorCliente_ViajeDeOtroClienteEsNotFound(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	duenioDelViaje := f.seedCliente()
	otro := f.seedCliente()

	v := &model.Viaje{
		Origen: "a", Destino: "b", Estado: model.ViajePendiente,
		ClienteID: &duenioDelViaje.ID, RemiseriaID: rem.ID,
	}
	require.NoError(t, f.viajes.Create(context.Background(), v))

	_, err := f.svc.CancelarPorCliente(context.Background(), otro.UsuarioID, "otro@pax.test", v.ID, RequestMeta{})
	require.Error(t, err)
	apiErr := err.(*apierror.APIError)
	// Existence of someone else's viaje is never leaked as Forbidden.
	assert.Equal(t, 404, apiErr.Status)
}

func TestCancelarViaje_TerminalRechazado(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	cl := f.seedCliente()

	for _, estado := range []string{model.ViajeCompletado, model.ViajeCancelado} {
		v := &model.Viaje{
			Origen: "a", Destino: "b", Estado: estado,
			ClienteID: &cl.ID, RemiseriaID: rem.ID,
		}
		require.NoError(t, f.viajes.Create(context.Background(), v))

		_, err := f.svc.CancelarPorCliente(context.Background(), cl.UsuarioID, "laura@pax.test", v.ID, RequestMeta{})
		require.Error(t, err, estado)
		apiErr := err.(*apierror.APIError)
		assert.Equal(t, 400, apiErr.Status)
		assert.Equal(t, "No se puede cancelar un viaje finalizado", apiErr.Mensaje)
		assert.Equal(t, estado, f.viajes.viajes[v.ID].Estado, "el estado no debe cambiar")
	}
}

func TestAsignarViaje_Flujo(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	co := f.seedCoordinador(rem.ID)

	ch := &model.Chofer{
		NumeroChofer: "CH-001", Nombre: "Raúl", Apellido: "Díaz", DNI: "27888999",
		Telefono: "1100000001", Estado: model.ChoferActivo, RemiseriaID: rem.ID,
	}
	require.NoError(t, f.choferes.Create(context.Background(), ch))
	veh := &model.Vehiculo{
		Patente: "AB123CD", Marca: "Toyota", Modelo: "Corolla",
		Estado: model.VehiculoActivo, RemiseriaID: rem.ID,
	}
	require.NoError(t, f.vehiculos.Create(context.Background(), veh))

	v := &model.Viaje{Origen: "a", Destino: "b", Estado: model.ViajePendiente, RemiseriaID: rem.ID}
	require.NoError(t, f.viajes.Create(context.Background(), v))

	resp, err := f.svc.Asignar(context.Background(), *co.UsuarioID, v.ID, dto.AsignarViajeRequest{
		ChoferID: ch.ID.String(), VehiculoID: veh.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.ViajeEnCurso, resp.Estado)
	require.NotNil(t, resp.ChoferID)
	assert.Equal(t, ch.ID.String(), *resp.ChoferID)

	// Already EN_CURSO: a second assignment is rejected.
	_, err = f.svc.Asignar(context.Background(), *co.UsuarioID, v.ID, dto.AsignarViajeRequest{
		ChoferID: ch.ID.String(), VehiculoID: veh.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, "Solo se pueden asignar viajes pendientes", err.(*apierror.APIError).Mensaje)
}

func TestAsignarViaje_ChoferDeOtraRemiseria(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	otra := f.seedRemiseria(true)
	co := f.seedCoordinador(rem.ID)

	ch := &model.Chofer{
		NumeroChofer: "CH-002", Nombre: "Ajeno", Apellido: "Pérez", DNI: "27111222",
		Telefono: "1100000002", Estado: model.ChoferActivo, RemiseriaID: otra.ID,
	}
	require.NoError(t, f.choferes.Create(context.Background(), ch))
	veh := &model.Vehiculo{Patente: "XY999ZZ", Estado: model.VehiculoActivo, RemiseriaID: rem.ID}
	require.NoError(t, f.vehiculos.Create(context.Background(), veh))

	v := &model.Viaje{Origen: "a", Destino: "b", Estado: model.ViajePendiente, RemiseriaID: rem.ID}
	require.NoError(t, f.viajes.Create(context.Background(), v))

	_, err := f.svc.Asignar(context.Background(), *co.UsuarioID, v.ID, dto.AsignarViajeRequest{
		ChoferID: ch.ID.String(), VehiculoID: veh.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, "El chofer pertenece a otra remisería", err.(*apierror.APIError).Mensaje)
	assert.Equal(t, model.ViajePendiente, f.viajes.viajes[v.ID].Estado)
}

func TestAsignarViaje_ChoferSuspendido(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	co := f.seedCoordinador(rem.ID)

	ch := &model.Chofer{
		NumeroChofer: "CH-003", Nombre: "Sus", Apellido: "Pendido", DNI: "27333444",
		Telefono: "1100000003", Estado: model.ChoferSuspendido, RemiseriaID: rem.ID,
	}
	require.NoError(t, f.choferes.Create(context.Background(), ch))
	veh := &model.Vehiculo{Patente: "AC456DF", Estado: model.VehiculoActivo, RemiseriaID: rem.ID}
	require.NoError(t, f.vehiculos.Create(context.Background(), veh))

	v := &model.Viaje{Origen: "a", Destino: "b", Estado: model.ViajePendiente, RemiseriaID: rem.ID}
	require.NoError(t, f.viajes.Create(context.Background(), v))

	_, err := f.svc.Asignar(context.Background(), *co.UsuarioID, v.ID, dto.AsignarViajeRequest{
		ChoferID: ch.ID.String(), VehiculoID: veh.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, "El chofer no está activo", err.(*apierror.APIError).Mensaje)
}

func TestCompletarViaje_SoloEnCurso(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	co := f.seedCoordinador(rem.ID)

	v := &model.Viaje{Origen: "a", Destino: "b", Estado: model.ViajePendiente, RemiseriaID: rem.ID}
	require.NoError(t, f.viajes.Create(context.Background(), v))

	_, err := f.svc.Completar(context.Background(), *co.UsuarioID, v.ID)
	require.Error(t, err)
	assert.Equal(t, "Solo se pueden completar viajes en curso", err.(*apierror.APIError).Mensaje)

	v.Estado = model.ViajeEnCurso
	resp, err := f.svc.Completar(context.Background(), *co.UsuarioID, v.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ViajeCompletado, resp.Estado)
}

func TestViajeDeOtraRemiseria_EsNotFoundParaCoordinador(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	otra := f.seedRemiseria(true)
	co := f.seedCoordinador(rem.ID)

	v := &model.Viaje{Origen: "a", Destino: "b", Estado: model.ViajeEnCurso, RemiseriaID: otra.ID}
	require.NoError(t, f.viajes.Create(context.Background(), v))

	_, err := f.svc.Completar(context.Background(), *co.UsuarioID, v.ID)
	require.Error(t, err)
	assert.Equal(t, 404, err.(*apierror.APIError).Status)
}

func TestCrearPorCoordinador_SnapshotDesdePerfil(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	co := f.seedCoordinador(rem.ID)
	cl := f.seedCliente()

	cid := cl.ID.String()
	resp, err := f.svc.CrearPorCoordinador(context.Background(), *co.UsuarioID, "coord@remises.test", dto.CrearViajeRequest{
		Origen: "Hospital Central", Destino: "Barrio Norte", ClienteID: &cid,
	}, RequestMeta{})
	require.NoError(t, err)

	assert.Equal(t, rem.ID.String(), resp.RemiseriaID)
	require.NotNil(t, resp.ClienteNombre)
	assert.Equal(t, "Laura Paz", *resp.ClienteNombre)
	require.NotNil(t, resp.ClienteEmail)
	assert.Equal(t, "laura@pax.test", *resp.ClienteEmail)
}

func TestCrearPorCoordinador_ClienteInexistente(t *testing.T) {
	f := newViajeFixture()
	rem := f.seedRemiseria(true)
	co := f.seedCoordinador(rem.ID)

	cid := uuid.NewString()
	_, err := f.svc.CrearPorCoordinador(context.Background(), *co.UsuarioID, "coord@remises.test", dto.CrearViajeRequest{
		Origen: "Hospital Central", Destino: "Barrio Norte", ClienteID: &cid,
	}, RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, "El cliente indicado no existe", err.(*apierror.APIError).Mensaje)
}

package service

import (
	"context"
	"testing"
	"time"

	"appremises/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	svc      DashboardService
	viajes   *stubViajeRepo
	reservas *stubReservaRepo
	rem      *model.Remiseria
	otra     *model.Remiseria
	usuario  uuid.UUID
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	viajes := newStubViajeRepo()
	reservas := newStubReservaRepo()
	coords := newStubCoordinadorRepo()
	vehiculos := newStubVehiculoRepo()
	choferes := newStubChoferRepo()
	remiserias := newStubRemiseriaRepo(viajes)

	rem := &model.Remiseria{NombreFantasia: "Propia", CUIT: uuid.NewString(), Estado: true}
	require.NoError(t, remiserias.Create(context.Background(), nil, rem))
	otra := &model.Remiseria{NombreFantasia: "Ajena", CUIT: uuid.NewString(), Estado: true}
	require.NoError(t, remiserias.Create(context.Background(), nil, otra))

	uid := uuid.New()
	co := &model.Coordinador{
		Nombre: "Coord", Email: "dash@coord.test",
		Activo: true, RemiseriaID: rem.ID, UsuarioID: &uid,
	}
	require.NoError(t, coords.Create(context.Background(), nil, co))

	svc := NewDashboardService(coords, viajes, reservas, vehiculos, choferes)
	return &dashboardFixture{svc: svc, viajes: viajes, reservas: reservas, rem: rem, otra: otra, usuario: uid}
}

func (f *dashboardFixture) seedViaje(t *testing.T, remiseriaID uuid.UUID, estado string, conChofer bool) {
	t.Helper()
	v := &model.Viaje{
		Origen: "a", Destino: "b", Fecha: time.Now(),
		Estado: estado, RemiseriaID: remiseriaID,
	}
	if conChofer {
		cid := uuid.New()
		v.ChoferID = &cid
	}
	require.NoError(t, f.viajes.Create(context.Background(), v))
}

func TestViajesSinAsignar_SoloPendientesSinChoferDeLaRemiseria(t *testing.T) {
	f := newDashboardFixture(t)

	f.seedViaje(t, f.rem.ID, model.ViajePendiente, false) // cuenta
	f.seedViaje(t, f.rem.ID, model.ViajePendiente, true)  // ya tiene chofer
	f.seedViaje(t, f.rem.ID, model.ViajeEnCurso, true)    // no es pendiente
	f.seedViaje(t, f.otra.ID, model.ViajePendiente, false) // otra remisería

	lista, err := f.svc.ViajesSinAsignar(context.Background(), f.usuario)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, f.rem.ID.String(), lista[0].RemiseriaID)
	assert.Equal(t, model.ViajePendiente, lista[0].Estado)
	assert.Nil(t, lista[0].ChoferID)
}

func TestViajesEnCurso_ScopedALaRemiseria(t *testing.T) {
	f := newDashboardFixture(t)

	f.seedViaje(t, f.rem.ID, model.ViajeEnCurso, true)
	f.seedViaje(t, f.otra.ID, model.ViajeEnCurso, true)

	lista, err := f.svc.ViajesEnCurso(context.Background(), f.usuario)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, f.rem.ID.String(), lista[0].RemiseriaID)
}

func TestDashboardStats(t *testing.T) {
	f := newDashboardFixture(t)

	f.seedViaje(t, f.rem.ID, model.ViajeEnCurso, true)
	f.seedViaje(t, f.rem.ID, model.ViajePendiente, false)
	f.seedViaje(t, f.rem.ID, model.ViajePendiente, false)

	_ = f.reservas.Create(context.Background(), &model.Reserva{
		ClienteNombre: "X", ClienteTelefono: "1", Origen: "a", Destino: "b",
		FechaInicio: time.Now(), HoraInicio: "09:00", Tipo: model.ReservaUnica,
		Estado: model.ReservaActiva, RemiseriaID: f.rem.ID,
	})

	stats, err := f.svc.Stats(context.Background(), f.usuario)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.ViajesHoy)
	assert.Equal(t, int64(1), stats.ViajesEnCurso)
	assert.Equal(t, int64(2), stats.ViajesSinAsignar)
	assert.Equal(t, int64(1), stats.ReservasActivas)
}

func TestDashboard_UsuarioSinCoordinadorEsNotFound(t *testing.T) {
	f := newDashboardFixture(t)

	_, err := f.svc.Stats(context.Background(), uuid.New())
	require.Error(t, err)
}

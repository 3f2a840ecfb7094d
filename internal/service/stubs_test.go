package service

import (
	"context"
	"time"

	"appremises/internal/model"
	"appremises/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repository stubs shared by the service tests ───────────────────

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, _ *gorm.DB, u *model.Usuario) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SetActivo(_ context.Context, id uuid.UUID, activo bool) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = activo
	return nil
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

type stubDuenioRepo struct {
	duenios map[uuid.UUID]*model.Duenio
}

func newStubDuenioRepo() *stubDuenioRepo {
	return &stubDuenioRepo{duenios: make(map[uuid.UUID]*model.Duenio)}
}

func (r *stubDuenioRepo) Create(_ context.Context, _ *gorm.DB, d *model.Duenio) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.duenios[d.ID] = d
	return nil
}

func (r *stubDuenioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Duenio, error) {
	d, ok := r.duenios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDuenioRepo) FindByDNI(_ context.Context, dni string) (*model.Duenio, error) {
	for _, d := range r.duenios {
		if d.DNI != nil && *d.DNI == dni {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDuenioRepo) FindByUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Duenio, error) {
	for _, d := range r.duenios {
		if d.UsuarioID == usuarioID {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDuenioRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Duenio, error) {
	var out []model.Duenio
	for _, id := range ids {
		if d, ok := r.duenios[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDuenioRepo) List(_ context.Context) ([]model.Duenio, error) {
	out := make([]model.Duenio, 0, len(r.duenios))
	for _, d := range r.duenios {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDuenioRepo) Update(_ context.Context, d *model.Duenio) error {
	r.duenios[d.ID] = d
	return nil
}

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, _ *gorm.DB, cl *model.Cliente) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	r.clientes[cl.ID] = cl
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	cl, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cl, nil
}

func (r *stubClienteRepo) FindByDNI(_ context.Context, dni string) (*model.Cliente, error) {
	for _, cl := range r.clientes {
		if cl.DNI == dni {
			return cl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) FindByUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Cliente, error) {
	for _, cl := range r.clientes {
		if cl.UsuarioID == usuarioID {
			return cl, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) Update(_ context.Context, cl *model.Cliente) error {
	r.clientes[cl.ID] = cl
	return nil
}

type stubCoordinadorRepo struct {
	coordinadores map[uuid.UUID]*model.Coordinador
}

func newStubCoordinadorRepo() *stubCoordinadorRepo {
	return &stubCoordinadorRepo{coordinadores: make(map[uuid.UUID]*model.Coordinador)}
}

func (r *stubCoordinadorRepo) Create(_ context.Context, _ *gorm.DB, co *model.Coordinador) error {
	if co.ID == uuid.Nil {
		co.ID = uuid.New()
	}
	r.coordinadores[co.ID] = co
	return nil
}

func (r *stubCoordinadorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Coordinador, error) {
	co, ok := r.coordinadores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return co, nil
}

func (r *stubCoordinadorRepo) FindByEmail(_ context.Context, email string) (*model.Coordinador, error) {
	for _, co := range r.coordinadores {
		if co.Email == email {
			return co, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCoordinadorRepo) FindByUsuario(_ context.Context, usuarioID uuid.UUID) (*model.Coordinador, error) {
	for _, co := range r.coordinadores {
		if co.UsuarioID != nil && *co.UsuarioID == usuarioID {
			return co, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCoordinadorRepo) List(_ context.Context) ([]model.Coordinador, error) {
	out := make([]model.Coordinador, 0, len(r.coordinadores))
	for _, co := range r.coordinadores {
		out = append(out, *co)
	}
	return out, nil
}

func (r *stubCoordinadorRepo) ListByRemiserias(_ context.Context, remiseriaIDs []uuid.UUID) ([]model.Coordinador, error) {
	var out []model.Coordinador
	for _, co := range r.coordinadores {
		for _, id := range remiseriaIDs {
			if co.RemiseriaID == id {
				out = append(out, *co)
			}
		}
	}
	return out, nil
}

func (r *stubCoordinadorRepo) Update(_ context.Context, co *model.Coordinador) error {
	r.coordinadores[co.ID] = co
	return nil
}

func (r *stubCoordinadorRepo) SetActivo(_ context.Context, id uuid.UUID, activo bool) error {
	co, ok := r.coordinadores[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	co.Activo = activo
	return nil
}

func (r *stubCoordinadorRepo) DB() *gorm.DB { return nil }

type stubChoferRepo struct {
	choferes map[uuid.UUID]*model.Chofer
}

func newStubChoferRepo() *stubChoferRepo {
	return &stubChoferRepo{choferes: make(map[uuid.UUID]*model.Chofer)}
}

func (r *stubChoferRepo) Create(_ context.Context, ch *model.Chofer) error {
	for _, existing := range r.choferes {
		if existing.NumeroChofer == ch.NumeroChofer || existing.DNI == ch.DNI {
			return gorm.ErrDuplicatedKey
		}
	}
	if ch.ID == uuid.Nil {
		ch.ID = uuid.New()
	}
	r.choferes[ch.ID] = ch
	return nil
}

func (r *stubChoferRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Chofer, error) {
	ch, ok := r.choferes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ch, nil
}

func (r *stubChoferRepo) FindByNumero(_ context.Context, numero string) (*model.Chofer, error) {
	for _, ch := range r.choferes {
		if ch.NumeroChofer == numero {
			return ch, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubChoferRepo) FindByDNI(_ context.Context, dni string) (*model.Chofer, error) {
	for _, ch := range r.choferes {
		if ch.DNI == dni {
			return ch, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubChoferRepo) List(_ context.Context) ([]model.Chofer, error) {
	out := make([]model.Chofer, 0, len(r.choferes))
	for _, ch := range r.choferes {
		out = append(out, *ch)
	}
	return out, nil
}

func (r *stubChoferRepo) ListByRemiserias(_ context.Context, remiseriaIDs []uuid.UUID) ([]model.Chofer, error) {
	var out []model.Chofer
	for _, ch := range r.choferes {
		for _, id := range remiseriaIDs {
			if ch.RemiseriaID == id {
				out = append(out, *ch)
			}
		}
	}
	return out, nil
}

func (r *stubChoferRepo) ListByRemiseria(_ context.Context, remiseriaID uuid.UUID) ([]model.Chofer, error) {
	return r.ListByRemiserias(context.Background(), []uuid.UUID{remiseriaID})
}

func (r *stubChoferRepo) Update(_ context.Context, ch *model.Chofer) error {
	r.choferes[ch.ID] = ch
	return nil
}

func (r *stubChoferRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	ch, ok := r.choferes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ch.Estado = estado
	return nil
}

type stubVehiculoRepo struct {
	vehiculos map[uuid.UUID]*model.Vehiculo
}

func newStubVehiculoRepo() *stubVehiculoRepo {
	return &stubVehiculoRepo{vehiculos: make(map[uuid.UUID]*model.Vehiculo)}
}

func (r *stubVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) error {
	for _, existing := range r.vehiculos {
		if existing.Patente == v.Patente {
			return gorm.ErrDuplicatedKey
		}
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVehiculoRepo) FindByPatente(_ context.Context, patente string) (*model.Vehiculo, error) {
	for _, v := range r.vehiculos {
		if v.Patente == patente {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVehiculoRepo) List(_ context.Context) ([]model.Vehiculo, error) {
	out := make([]model.Vehiculo, 0, len(r.vehiculos))
	for _, v := range r.vehiculos {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVehiculoRepo) ListByRemiserias(_ context.Context, remiseriaIDs []uuid.UUID) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.vehiculos {
		for _, id := range remiseriaIDs {
			if v.RemiseriaID == id {
				out = append(out, *v)
			}
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) ListByRemiseria(_ context.Context, remiseriaID uuid.UUID) ([]model.Vehiculo, error) {
	return r.ListByRemiserias(context.Background(), []uuid.UUID{remiseriaID})
}

func (r *stubVehiculoRepo) Update(_ context.Context, v *model.Vehiculo) error {
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

type stubViajeRepo struct {
	viajes map[uuid.UUID]*model.Viaje
}

func newStubViajeRepo() *stubViajeRepo {
	return &stubViajeRepo{viajes: make(map[uuid.UUID]*model.Viaje)}
}

func (r *stubViajeRepo) Create(_ context.Context, v *model.Viaje) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.viajes[v.ID] = v
	return nil
}

func (r *stubViajeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Viaje, error) {
	v, ok := r.viajes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubViajeRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Viaje, error) {
	var out []model.Viaje
	for _, v := range r.viajes {
		if v.ClienteID != nil && *v.ClienteID == clienteID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubViajeRepo) EnCurso(_ context.Context, remiseriaID uuid.UUID) ([]model.Viaje, error) {
	var out []model.Viaje
	for _, v := range r.viajes {
		if v.RemiseriaID == remiseriaID && v.Estado == model.ViajeEnCurso {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubViajeRepo) SinAsignar(_ context.Context, remiseriaID uuid.UUID) ([]model.Viaje, error) {
	var out []model.Viaje
	for _, v := range r.viajes {
		if v.RemiseriaID == remiseriaID && v.Estado == model.ViajePendiente && v.ChoferID == nil {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubViajeRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	v, ok := r.viajes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Estado = estado
	return nil
}

func (r *stubViajeRepo) Asignar(_ context.Context, id, choferID, vehiculoID uuid.UUID) error {
	v, ok := r.viajes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.ChoferID = &choferID
	v.VehiculoID = &vehiculoID
	v.Estado = model.ViajeEnCurso
	return nil
}

func (r *stubViajeRepo) CountByEstado(_ context.Context, remiseriaID uuid.UUID, estado string) (int64, error) {
	var n int64
	for _, v := range r.viajes {
		if v.RemiseriaID == remiseriaID && v.Estado == estado {
			n++
		}
	}
	return n, nil
}

func (r *stubViajeRepo) CountHoy(_ context.Context, remiseriaID uuid.UUID) (int64, error) {
	hoy := time.Now().Truncate(24 * time.Hour)
	var n int64
	for _, v := range r.viajes {
		if v.RemiseriaID == remiseriaID && !v.Fecha.Before(hoy) {
			n++
		}
	}
	return n, nil
}

func (r *stubViajeRepo) ListByRemiseriasAndRange(_ context.Context, remiseriaIDs []uuid.UUID, desde, hasta time.Time) ([]model.Viaje, error) {
	var out []model.Viaje
	for _, v := range r.viajes {
		for _, id := range remiseriaIDs {
			if v.RemiseriaID == id && !v.Fecha.Before(desde) && !v.Fecha.After(hasta) {
				out = append(out, *v)
			}
		}
	}
	return out, nil
}

type stubRemiseriaRepo struct {
	remiserias map[uuid.UUID]*model.Remiseria
	viajes     *stubViajeRepo // backing store for the least-loaded matcher
}

func newStubRemiseriaRepo(viajes *stubViajeRepo) *stubRemiseriaRepo {
	return &stubRemiseriaRepo{remiserias: make(map[uuid.UUID]*model.Remiseria), viajes: viajes}
}

func (r *stubRemiseriaRepo) Create(_ context.Context, _ *gorm.DB, rem *model.Remiseria) error {
	for _, existing := range r.remiserias {
		if existing.CUIT == rem.CUIT {
			return gorm.ErrDuplicatedKey
		}
	}
	if rem.ID == uuid.Nil {
		rem.ID = uuid.New()
	}
	r.remiserias[rem.ID] = rem
	return nil
}

func (r *stubRemiseriaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Remiseria, error) {
	rem, ok := r.remiserias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rem, nil
}

func (r *stubRemiseriaRepo) List(_ context.Context) ([]model.Remiseria, error) {
	out := make([]model.Remiseria, 0, len(r.remiserias))
	for _, rem := range r.remiserias {
		out = append(out, *rem)
	}
	return out, nil
}

func (r *stubRemiseriaRepo) ListByDuenio(_ context.Context, duenioID uuid.UUID) ([]model.Remiseria, error) {
	var out []model.Remiseria
	for _, rem := range r.remiserias {
		for _, d := range rem.Duenios {
			if d.ID == duenioID {
				out = append(out, *rem)
			}
		}
	}
	return out, nil
}

func (r *stubRemiseriaRepo) Update(_ context.Context, rem *model.Remiseria) error {
	r.remiserias[rem.ID] = rem
	return nil
}

func (r *stubRemiseriaRepo) ReplaceDuenios(_ context.Context, rem *model.Remiseria, duenios []model.Duenio) error {
	rem.Duenios = duenios
	return nil
}

func (r *stubRemiseriaRepo) CountReferencias(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	if r.viajes != nil {
		for _, v := range r.viajes.viajes {
			if v.RemiseriaID == id {
				n++
			}
		}
	}
	return n, nil
}

func (r *stubRemiseriaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.remiserias, id)
	return nil
}

func (r *stubRemiseriaRepo) FindMenosCargada(_ context.Context) (*model.Remiseria, error) {
	var best *model.Remiseria
	var bestCarga int64 = -1
	for _, rem := range r.remiserias {
		if !rem.Estado {
			continue
		}
		carga, _ := r.viajes.CountByEstado(context.Background(), rem.ID, model.ViajePendiente)
		if bestCarga == -1 || carga < bestCarga {
			best = rem
			bestCarga = carga
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (r *stubRemiseriaRepo) DB() *gorm.DB { return nil }

type stubReservaRepo struct {
	reservas map[uuid.UUID]*model.Reserva
}

func newStubReservaRepo() *stubReservaRepo {
	return &stubReservaRepo{reservas: make(map[uuid.UUID]*model.Reserva)}
}

func (r *stubReservaRepo) Create(_ context.Context, res *model.Reserva) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	r.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Reserva, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *stubReservaRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Reserva, error) {
	var out []model.Reserva
	for _, res := range r.reservas {
		if res.ClienteID != nil && *res.ClienteID == clienteID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *stubReservaRepo) Activas(_ context.Context, remiseriaID uuid.UUID) ([]model.Reserva, error) {
	var out []model.Reserva
	for _, res := range r.reservas {
		if res.RemiseriaID == remiseriaID && res.Estado == model.ReservaActiva {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *stubReservaRepo) CountActivas(_ context.Context, remiseriaID uuid.UUID) (int64, error) {
	activas, _ := r.Activas(context.Background(), remiseriaID)
	return int64(len(activas)), nil
}

func (r *stubReservaRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	res, ok := r.reservas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	res.Estado = estado
	return nil
}

type stubAppUsageRepo struct {
	rows []model.AppUsage
}

func (r *stubAppUsageRepo) Create(_ context.Context, u *model.AppUsage) error {
	r.rows = append(r.rows, *u)
	return nil
}

func (r *stubAppUsageRepo) CountSince(_ context.Context, desde time.Time) (int64, error) {
	var n int64
	for _, row := range r.rows {
		if !row.CreatedAt.Before(desde) {
			n++
		}
	}
	return n, nil
}

func (r *stubAppUsageRepo) CountByAccion(_ context.Context, desde time.Time) ([]repository.AccionCount, error) {
	counts := make(map[string]int64)
	for _, row := range r.rows {
		if !row.CreatedAt.Before(desde) {
			counts[row.Accion]++
		}
	}
	out := make([]repository.AccionCount, 0, len(counts))
	for accion, n := range counts {
		out = append(out, repository.AccionCount{Accion: accion, Cantidad: n})
	}
	return out, nil
}

func (r *stubAppUsageRepo) CountByUsuario(_ context.Context, desde time.Time, limit int) ([]repository.UsuarioCount, error) {
	counts := make(map[string]int64)
	for _, row := range r.rows {
		if !row.CreatedAt.Before(desde) {
			counts[row.UsuarioEmail]++
		}
	}
	out := make([]repository.UsuarioCount, 0, len(counts))
	for email, n := range counts {
		out = append(out, repository.UsuarioCount{UsuarioEmail: email, Cantidad: n})
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

package repository

import (
	"context"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RemiseriaRepository interface {
	// Create inserts the remisería and its dueño associations atomically
	// when tx is given (populate rem.Duenios before calling).
	Create(ctx context.Context, tx *gorm.DB, rem *model.Remiseria) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Remiseria, error)
	List(ctx context.Context) ([]model.Remiseria, error)
	ListByDuenio(ctx context.Context, duenioID uuid.UUID) ([]model.Remiseria, error)
	Update(ctx context.Context, rem *model.Remiseria) error
	ReplaceDuenios(ctx context.Context, rem *model.Remiseria, duenios []model.Duenio) error
	// CountReferencias returns how many coordinadores, choferes, vehículos
	// and viajes still point at the remisería (delete guard).
	CountReferencias(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// FindMenosCargada picks the active remisería with the fewest viajes
	// PENDIENTE — the dispatch matcher for client-requested trips.
	FindMenosCargada(ctx context.Context) (*model.Remiseria, error)
	DB() *gorm.DB
}

type remiseriaRepo struct{ db *gorm.DB }

func NewRemiseriaRepository(db *gorm.DB) RemiseriaRepository { return &remiseriaRepo{db: db} }

func (r *remiseriaRepo) Create(ctx context.Context, tx *gorm.DB, rem *model.Remiseria) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Create(rem).Error
}

func (r *remiseriaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Remiseria, error) {
	var rem model.Remiseria
	err := r.db.WithContext(ctx).
		Preload("Duenios").
		First(&rem, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *remiseriaRepo) List(ctx context.Context) ([]model.Remiseria, error) {
	var rems []model.Remiseria
	err := r.db.WithContext(ctx).
		Preload("Duenios").
		Order("nombre_fantasia").
		Find(&rems).Error
	return rems, err
}

func (r *remiseriaRepo) ListByDuenio(ctx context.Context, duenioID uuid.UUID) ([]model.Remiseria, error) {
	var rems []model.Remiseria
	err := r.db.WithContext(ctx).
		Joins("JOIN remiseria_duenios rd ON rd.remiseria_id = remiserias.id").
		Where("rd.duenio_id = ?", duenioID).
		Preload("Duenios").
		Order("nombre_fantasia").
		Find(&rems).Error
	return rems, err
}

func (r *remiseriaRepo) Update(ctx context.Context, rem *model.Remiseria) error {
	return r.db.WithContext(ctx).Omit("Duenios").Save(rem).Error
}

func (r *remiseriaRepo) ReplaceDuenios(ctx context.Context, rem *model.Remiseria, duenios []model.Duenio) error {
	return r.db.WithContext(ctx).Model(rem).Association("Duenios").Replace(duenios)
}

func (r *remiseriaRepo) CountReferencias(ctx context.Context, id uuid.UUID) (int64, error) {
	var total int64
	for _, m := range []interface{}{&model.Coordinador{}, &model.Chofer{}, &model.Vehiculo{}, &model.Viaje{}} {
		var n int64
		if err := r.db.WithContext(ctx).Model(m).Where("remiseria_id = ?", id).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *remiseriaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Duenios").Delete(&model.Remiseria{ID: id}).Error
}

func (r *remiseriaRepo) FindMenosCargada(ctx context.Context) (*model.Remiseria, error) {
	var rem model.Remiseria
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN viajes v ON v.remiseria_id = remiserias.id AND v.estado = ?", model.ViajePendiente).
		Where("remiserias.estado = true").
		Group("remiserias.id").
		Order("COUNT(v.id) ASC").
		First(&rem).Error
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *remiseriaRepo) DB() *gorm.DB { return r.db }

package repository

import (
	"context"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)
	FindByPatente(ctx context.Context, patente string) (*model.Vehiculo, error)
	List(ctx context.Context) ([]model.Vehiculo, error)
	ListByRemiserias(ctx context.Context, remiseriaIDs []uuid.UUID) ([]model.Vehiculo, error)
	ListByRemiseria(ctx context.Context, remiseriaID uuid.UUID) ([]model.Vehiculo, error)
	Update(ctx context.Context, v *model.Vehiculo) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).
		Preload("Choferes").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehiculoRepo) FindByPatente(ctx context.Context, patente string) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).First(&v, "patente = ?", patente).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehiculoRepo) List(ctx context.Context) ([]model.Vehiculo, error) {
	var vs []model.Vehiculo
	err := r.db.WithContext(ctx).Order("patente").Find(&vs).Error
	return vs, err
}

func (r *vehiculoRepo) ListByRemiserias(ctx context.Context, remiseriaIDs []uuid.UUID) ([]model.Vehiculo, error) {
	var vs []model.Vehiculo
	err := r.db.WithContext(ctx).
		Where("remiseria_id IN ?", remiseriaIDs).
		Order("patente").
		Find(&vs).Error
	return vs, err
}

func (r *vehiculoRepo) ListByRemiseria(ctx context.Context, remiseriaID uuid.UUID) ([]model.Vehiculo, error) {
	return r.ListByRemiserias(ctx, []uuid.UUID{remiseriaID})
}

func (r *vehiculoRepo) Update(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehiculoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Vehiculo{}).Where("id = ?", id).Update("estado", estado).Error
}

package repository

import (
	"context"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DuenioRepository interface {
	Create(ctx context.Context, tx *gorm.DB, d *model.Duenio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Duenio, error)
	FindByDNI(ctx context.Context, dni string) (*model.Duenio, error)
	FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Duenio, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Duenio, error)
	List(ctx context.Context) ([]model.Duenio, error)
	Update(ctx context.Context, d *model.Duenio) error
}

type duenioRepo struct{ db *gorm.DB }

func NewDuenioRepository(db *gorm.DB) DuenioRepository { return &duenioRepo{db: db} }

func (r *duenioRepo) Create(ctx context.Context, tx *gorm.DB, d *model.Duenio) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Create(d).Error
}

func (r *duenioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Duenio, error) {
	var d model.Duenio
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Remiserias").
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *duenioRepo) FindByDNI(ctx context.Context, dni string) (*model.Duenio, error) {
	var d model.Duenio
	err := r.db.WithContext(ctx).First(&d, "dni = ?", dni).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *duenioRepo) FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Duenio, error) {
	var d model.Duenio
	err := r.db.WithContext(ctx).
		Preload("Remiserias").
		First(&d, "usuario_id = ?", usuarioID).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *duenioRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Duenio, error) {
	var duenios []model.Duenio
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&duenios).Error
	return duenios, err
}

func (r *duenioRepo) List(ctx context.Context) ([]model.Duenio, error) {
	var duenios []model.Duenio
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Remiserias").
		Order("nombre").
		Find(&duenios).Error
	return duenios, err
}

func (r *duenioRepo) Update(ctx context.Context, d *model.Duenio) error {
	return r.db.WithContext(ctx).Save(d).Error
}

package repository

import (
	"context"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoordinadorRepository interface {
	Create(ctx context.Context, tx *gorm.DB, co *model.Coordinador) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Coordinador, error)
	FindByEmail(ctx context.Context, email string) (*model.Coordinador, error)
	FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Coordinador, error)
	List(ctx context.Context) ([]model.Coordinador, error)
	ListByRemiserias(ctx context.Context, remiseriaIDs []uuid.UUID) ([]model.Coordinador, error)
	Update(ctx context.Context, co *model.Coordinador) error
	SetActivo(ctx context.Context, id uuid.UUID, activo bool) error
	DB() *gorm.DB
}

type coordinadorRepo struct{ db *gorm.DB }

func NewCoordinadorRepository(db *gorm.DB) CoordinadorRepository { return &coordinadorRepo{db: db} }

func (r *coordinadorRepo) Create(ctx context.Context, tx *gorm.DB, co *model.Coordinador) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Create(co).Error
}

func (r *coordinadorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Coordinador, error) {
	var co model.Coordinador
	err := r.db.WithContext(ctx).
		Preload("Remiseria").
		First(&co, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &co, nil
}

func (r *coordinadorRepo) FindByEmail(ctx context.Context, email string) (*model.Coordinador, error) {
	var co model.Coordinador
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND activo = true", email).
		First(&co).Error
	if err != nil {
		return nil, err
	}
	return &co, nil
}

func (r *coordinadorRepo) FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Coordinador, error) {
	var co model.Coordinador
	err := r.db.WithContext(ctx).
		Preload("Remiseria").
		First(&co, "usuario_id = ?", usuarioID).Error
	if err != nil {
		return nil, err
	}
	return &co, nil
}

func (r *coordinadorRepo) List(ctx context.Context) ([]model.Coordinador, error) {
	var cos []model.Coordinador
	err := r.db.WithContext(ctx).
		Preload("Remiseria").
		Order("nombre").
		Find(&cos).Error
	return cos, err
}

func (r *coordinadorRepo) ListByRemiserias(ctx context.Context, remiseriaIDs []uuid.UUID) ([]model.Coordinador, error) {
	var cos []model.Coordinador
	err := r.db.WithContext(ctx).
		Where("remiseria_id IN ?", remiseriaIDs).
		Preload("Remiseria").
		Order("nombre").
		Find(&cos).Error
	return cos, err
}

func (r *coordinadorRepo) Update(ctx context.Context, co *model.Coordinador) error {
	return r.db.WithContext(ctx).Save(co).Error
}

func (r *coordinadorRepo) SetActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	return r.db.WithContext(ctx).Model(&model.Coordinador{}).Where("id = ?", id).Update("activo", activo).Error
}

func (r *coordinadorRepo) DB() *gorm.DB { return r.db }

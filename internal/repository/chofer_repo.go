package repository

import (
	"context"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChoferRepository interface {
	Create(ctx context.Context, ch *model.Chofer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Chofer, error)
	FindByNumero(ctx context.Context, numero string) (*model.Chofer, error)
	FindByDNI(ctx context.Context, dni string) (*model.Chofer, error)
	List(ctx context.Context) ([]model.Chofer, error)
	ListByRemiserias(ctx context.Context, remiseriaIDs []uuid.UUID) ([]model.Chofer, error)
	ListByRemiseria(ctx context.Context, remiseriaID uuid.UUID) ([]model.Chofer, error)
	Update(ctx context.Context, ch *model.Chofer) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
}

type choferRepo struct{ db *gorm.DB }

func NewChoferRepository(db *gorm.DB) ChoferRepository { return &choferRepo{db: db} }

func (r *choferRepo) Create(ctx context.Context, ch *model.Chofer) error {
	return r.db.WithContext(ctx).Create(ch).Error
}

func (r *choferRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Chofer, error) {
	var ch model.Chofer
	err := r.db.WithContext(ctx).
		Preload("Vehiculo").
		First(&ch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *choferRepo) FindByNumero(ctx context.Context, numero string) (*model.Chofer, error) {
	var ch model.Chofer
	err := r.db.WithContext(ctx).First(&ch, "numero_chofer = ?", numero).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *choferRepo) FindByDNI(ctx context.Context, dni string) (*model.Chofer, error) {
	var ch model.Chofer
	err := r.db.WithContext(ctx).First(&ch, "dni = ?", dni).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (r *choferRepo) List(ctx context.Context) ([]model.Chofer, error) {
	var chs []model.Chofer
	err := r.db.WithContext(ctx).
		Preload("Vehiculo").
		Order("apellido, nombre").
		Find(&chs).Error
	return chs, err
}

func (r *choferRepo) ListByRemiserias(ctx context.Context, remiseriaIDs []uuid.UUID) ([]model.Chofer, error) {
	var chs []model.Chofer
	err := r.db.WithContext(ctx).
		Where("remiseria_id IN ?", remiseriaIDs).
		Preload("Vehiculo").
		Order("apellido, nombre").
		Find(&chs).Error
	return chs, err
}

func (r *choferRepo) ListByRemiseria(ctx context.Context, remiseriaID uuid.UUID) ([]model.Chofer, error) {
	return r.ListByRemiserias(ctx, []uuid.UUID{remiseriaID})
}

func (r *choferRepo) Update(ctx context.Context, ch *model.Chofer) error {
	return r.db.WithContext(ctx).Save(ch).Error
}

func (r *choferRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Chofer{}).Where("id = ?", id).Update("estado", estado).Error
}

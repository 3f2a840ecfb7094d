package repository

import (
	"context"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservaRepository interface {
	Create(ctx context.Context, res *model.Reserva) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Reserva, error)
	// Activas returns ACTIVA reservas of the remisería ordered by start date.
	Activas(ctx context.Context, remiseriaID uuid.UUID) ([]model.Reserva, error)
	CountActivas(ctx context.Context, remiseriaID uuid.UUID) (int64, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) Create(ctx context.Context, res *model.Reserva) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *reservaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error) {
	var res model.Reserva
	err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Reserva, error) {
	var rs []model.Reserva
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("fecha_inicio DESC").
		Find(&rs).Error
	return rs, err
}

func (r *reservaRepo) Activas(ctx context.Context, remiseriaID uuid.UUID) ([]model.Reserva, error) {
	var rs []model.Reserva
	err := r.db.WithContext(ctx).
		Where("remiseria_id = ? AND estado = ?", remiseriaID, model.ReservaActiva).
		Order("fecha_inicio ASC").
		Find(&rs).Error
	return rs, err
}

func (r *reservaRepo) CountActivas(ctx context.Context, remiseriaID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Reserva{}).
		Where("remiseria_id = ? AND estado = ?", remiseriaID, model.ReservaActiva).
		Count(&n).Error
	return n, err
}

func (r *reservaRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Reserva{}).Where("id = ?", id).Update("estado", estado).Error
}

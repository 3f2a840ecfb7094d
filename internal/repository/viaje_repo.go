package repository

import (
	"context"
	"time"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViajeRepository interface {
	Create(ctx context.Context, v *model.Viaje) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Viaje, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Viaje, error)
	// EnCurso returns EN_CURSO viajes of the remisería, most recent first.
	EnCurso(ctx context.Context, remiseriaID uuid.UUID) ([]model.Viaje, error)
	// SinAsignar returns PENDIENTE viajes without chofer, oldest first
	// (dispatch urgency order).
	SinAsignar(ctx context.Context, remiseriaID uuid.UUID) ([]model.Viaje, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
	// Asignar sets chofer+vehículo and moves the viaje to EN_CURSO in one
	// row-level update.
	Asignar(ctx context.Context, id, choferID, vehiculoID uuid.UUID) error
	CountByEstado(ctx context.Context, remiseriaID uuid.UUID, estado string) (int64, error)
	CountHoy(ctx context.Context, remiseriaID uuid.UUID) (int64, error)
	ListByRemiseriasAndRange(ctx context.Context, remiseriaIDs []uuid.UUID, desde, hasta time.Time) ([]model.Viaje, error)
}

type viajeRepo struct{ db *gorm.DB }

func NewViajeRepository(db *gorm.DB) ViajeRepository { return &viajeRepo{db: db} }

func (r *viajeRepo) Create(ctx context.Context, v *model.Viaje) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *viajeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Viaje, error) {
	var v model.Viaje
	err := r.db.WithContext(ctx).
		Preload("Chofer").
		Preload("Vehiculo").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *viajeRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Viaje, error) {
	var vs []model.Viaje
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("fecha DESC").
		Find(&vs).Error
	return vs, err
}

func (r *viajeRepo) EnCurso(ctx context.Context, remiseriaID uuid.UUID) ([]model.Viaje, error) {
	var vs []model.Viaje
	err := r.db.WithContext(ctx).
		Where("remiseria_id = ? AND estado = ?", remiseriaID, model.ViajeEnCurso).
		Preload("Chofer").
		Preload("Vehiculo").
		Order("fecha DESC").
		Find(&vs).Error
	return vs, err
}

func (r *viajeRepo) SinAsignar(ctx context.Context, remiseriaID uuid.UUID) ([]model.Viaje, error) {
	var vs []model.Viaje
	err := r.db.WithContext(ctx).
		Where("remiseria_id = ? AND estado = ? AND chofer_id IS NULL", remiseriaID, model.ViajePendiente).
		Order("fecha ASC").
		Find(&vs).Error
	return vs, err
}

func (r *viajeRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Viaje{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *viajeRepo) Asignar(ctx context.Context, id, choferID, vehiculoID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Viaje{}).Where("id = ?", id).Updates(map[string]interface{}{
		"chofer_id":   choferID,
		"vehiculo_id": vehiculoID,
		"estado":      model.ViajeEnCurso,
	}).Error
}

func (r *viajeRepo) CountByEstado(ctx context.Context, remiseriaID uuid.UUID, estado string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Viaje{}).
		Where("remiseria_id = ? AND estado = ?", remiseriaID, estado).
		Count(&n).Error
	return n, err
}

func (r *viajeRepo) CountHoy(ctx context.Context, remiseriaID uuid.UUID) (int64, error) {
	var n int64
	hoy := time.Now().Truncate(24 * time.Hour)
	err := r.db.WithContext(ctx).Model(&model.Viaje{}).
		Where("remiseria_id = ? AND fecha >= ?", remiseriaID, hoy).
		Count(&n).Error
	return n, err
}

func (r *viajeRepo) ListByRemiseriasAndRange(ctx context.Context, remiseriaIDs []uuid.UUID, desde, hasta time.Time) ([]model.Viaje, error) {
	var vs []model.Viaje
	err := r.db.WithContext(ctx).
		Where("remiseria_id IN ? AND fecha BETWEEN ? AND ?", remiseriaIDs, desde, hasta).
		Order("fecha ASC").
		Find(&vs).Error
	return vs, err
}

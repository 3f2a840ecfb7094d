package repository

import (
	"context"
	"time"

	"appremises/internal/model"

	"gorm.io/gorm"
)

// AccionCount is one row of the per-action aggregate.
type AccionCount struct {
	Accion   string `json:"accion"`
	Cantidad int64  `json:"cantidad"`
}

// UsuarioCount is one row of the per-user aggregate.
type UsuarioCount struct {
	UsuarioEmail string `json:"usuarioEmail"`
	Cantidad     int64  `json:"cantidad"`
}

type AppUsageRepository interface {
	Create(ctx context.Context, u *model.AppUsage) error
	CountSince(ctx context.Context, desde time.Time) (int64, error)
	CountByAccion(ctx context.Context, desde time.Time) ([]AccionCount, error)
	CountByUsuario(ctx context.Context, desde time.Time, limit int) ([]UsuarioCount, error)
}

type appUsageRepo struct{ db *gorm.DB }

func NewAppUsageRepository(db *gorm.DB) AppUsageRepository { return &appUsageRepo{db: db} }

func (r *appUsageRepo) Create(ctx context.Context, u *model.AppUsage) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *appUsageRepo) CountSince(ctx context.Context, desde time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.AppUsage{}).
		Where("created_at >= ?", desde).
		Count(&n).Error
	return n, err
}

func (r *appUsageRepo) CountByAccion(ctx context.Context, desde time.Time) ([]AccionCount, error) {
	var rows []AccionCount
	err := r.db.WithContext(ctx).Model(&model.AppUsage{}).
		Select("accion, COUNT(*) AS cantidad").
		Where("created_at >= ?", desde).
		Group("accion").
		Order("cantidad DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *appUsageRepo) CountByUsuario(ctx context.Context, desde time.Time, limit int) ([]UsuarioCount, error) {
	var rows []UsuarioCount
	err := r.db.WithContext(ctx).Model(&model.AppUsage{}).
		Select("usuario_email, COUNT(*) AS cantidad").
		Where("created_at >= ?", desde).
		Group("usuario_email").
		Order("cantidad DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

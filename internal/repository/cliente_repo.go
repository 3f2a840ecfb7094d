package repository

import (
	"context"

	"appremises/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, cl *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByDNI(ctx context.Context, dni string) (*model.Cliente, error)
	FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Cliente, error)
	Update(ctx context.Context, cl *model.Cliente) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, tx *gorm.DB, cl *model.Cliente) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return conn.WithContext(ctx).Create(cl).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var cl model.Cliente
	err := r.db.WithContext(ctx).First(&cl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *clienteRepo) FindByDNI(ctx context.Context, dni string) (*model.Cliente, error) {
	var cl model.Cliente
	err := r.db.WithContext(ctx).First(&cl, "dni = ?", dni).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *clienteRepo) FindByUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Cliente, error) {
	var cl model.Cliente
	err := r.db.WithContext(ctx).First(&cl, "usuario_id = ?", usuarioID).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *clienteRepo) Update(ctx context.Context, cl *model.Cliente) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

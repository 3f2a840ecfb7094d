package infra

import (
	"fmt"

	"appremises/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate.
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey — the repositories rely on this: the DB index is the
// authority on natural-key uniqueness, not the friendly pre-check.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates/updates all tables. Shared with the e2e harness.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Duenio{},
		&model.Remiseria{},
		&model.Coordinador{},
		&model.Chofer{},
		&model.Vehiculo{},
		&model.Cliente{},
		&model.Viaje{},
		&model.Reserva{},
		&model.AppUsage{},
	)
}

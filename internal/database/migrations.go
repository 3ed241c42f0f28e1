package database

import (
	"embed"
	"errors"
	"fmt"

	m "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/wildlog/wildlog_api/internal/config"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

func setupMigrations(pool *pgxpool.Pool, conf config.Config) (*m.Migrate, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)

	driver, err := pgx.WithInstance(sqlDB, &pgx.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	var migrate *m.Migrate
	if conf.DB.MigrationsPath != "" {
		migrate, err = m.NewWithDatabaseInstance("file://"+conf.DB.MigrationsPath, conf.DB.Name, driver)
	} else {
		source, srcErr := iofs.New(embeddedMigrations, "migrations")
		if srcErr != nil {
			return nil, fmt.Errorf("failed to open embedded migrations: %w", srcErr)
		}
		migrate, err = m.NewWithInstance("iofs", source, conf.DB.Name, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	version, dirty, err := migrate.Version()
	if err != nil && !errors.Is(err, m.ErrNilVersion) {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}
	if dirty {
		return nil, fmt.Errorf("database is in dirty state (version %d), please fix manually", version)
	}

	return migrate, nil
}

// RunMigrations applies every pending up migration.
func RunMigrations(pool *pgxpool.Pool, conf config.Config) error {
	migrate, err := setupMigrations(pool, conf)
	if err != nil {
		return fmt.Errorf("failed to setup migrations: %w", err)
	}

	if err := migrate.Up(); err != nil && !errors.Is(err, m.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// DownMigrations rolls the schema all the way back.
func DownMigrations(pool *pgxpool.Pool, conf config.Config) error {
	migrate, err := setupMigrations(pool, conf)
	if err != nil {
		return fmt.Errorf("failed to setup migrations: %w", err)
	}
	defer func() {
		_, _ = migrate.Close()
	}()

	if err := migrate.Down(); err != nil && !errors.Is(err, m.ErrNoChange) {
		return fmt.Errorf("failed to down migrations: %w", err)
	}

	return nil
}

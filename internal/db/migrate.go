package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

func newMigrate(connString string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, connString)
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("could not initialize migrations: %w", err)
	}
	return m, nil
}

// MigrateUp applies all pending migrations and returns the resulting version.
func MigrateUp(connString string) (uint, error) {
	m, err := newMigrate(connString)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("could not apply migrations: %w", err)
	}
	return version(m)
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(connString string, steps int) (uint, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("steps must be positive, got %d", steps)
	}
	m, err := newMigrate(connString)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	err = m.Steps(-steps)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("could not roll back migrations: %w", err)
	}
	return version(m)
}

func version(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return v, fmt.Errorf("database is dirty at version %d", v)
	}
	return v, nil
}

package db

import (
	"errors"
	"fmt"

	"examly/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations применяет SQL-миграции из каталога cfg.MigrationsPath.
// Отсутствие новых миграций ошибкой не считается.
func RunMigrations(cfg *config.Config) error {
	sourceURL := "file://" + cfg.MigrationsPath

	m, err := migrate.New(sourceURL, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

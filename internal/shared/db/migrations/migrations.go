package migrations

import (
	"errors"
	"fmt"

	"github.com/cristianortiz/invoiceAuction/internal/shared/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// RunMigrations applies every pending migration found at sourceURL (a file:// path) to dsn
func RunMigrations(sourceURL, dsn string) error {
	log.Info("Running database migrations", zap.String("source", sourceURL))
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("migrations setup: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations up: %w", err)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migrations version: %w", err)
	}
	log.Info("Database migrations completed", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

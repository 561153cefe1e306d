// Package database opens the vocabulary database for the configured driver
// and brings its schema up to date.
package database

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"thesaurus/internal/config"
)

// Open connects to the configured database and prepares its schema
func Open(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.DSN())
	case config.DriverPostgres, config.DriverPgx:
		db, err := ConnectPostgres(cfg.Database.Driver, cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(db, cfg.Database.MigrationsPath, logger); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

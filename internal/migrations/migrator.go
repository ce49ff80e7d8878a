package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lopezator/migrator"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/logger"
)

// MigrateDB applies pending migrations to the database.
func MigrateDB(db *sqlx.DB, migrations []any) error {
	m, err := migrator.New(
		migrator.Migrations(migrations...),
		migrator.WithLogger(migrator.LoggerFunc(logger.Log.Infof)),
	)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	pending, err := m.Pending(db.DB)
	if err != nil {
		logger.Log.Warnw("failed to read pending migrations", "error", err)
	} else {
		logger.Log.Infow("database version",
			"version", len(migrations)-len(pending),
			"pending", len(pending),
		)
	}

	if err := m.Migrate(db.DB); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Log.Infow("migrations were successfully completed", "version", len(migrations))
	return nil
}

package helper

import (
	"database/sql"
	"errors"
	"fmt"
	"roomapi/config"
	"roomapi/infras/database"
	"roomapi/migrations"
	"roomapi/shared/constant"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

// getConnection opens a dedicated pool on the write store; closing the returned migrator closes it.
func getConnection(config *config.Config) (*migrate.Migrate, error) {
	driverName, dsn := database.WriteDSN(config)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", driverName, err)
	}

	var instance migratedb.Driver

	switch driverName {
	case constant.DBDriverSQLite:
		instance, err = sqlite.WithInstance(db, &sqlite.Config{MigrationsTable: config.DB.MigrationTable})
	default:
		instance, err = postgres.WithInstance(db, &postgres.Config{MigrationsTable: config.DB.MigrationTable})
	}

	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating %s migration driver: %w", driverName, err)
	}

	source, err := iofs.New(migrations.FS, driverName)
	if err != nil {
		_ = instance.Close()

		return nil, fmt.Errorf("reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, driverName, instance)
	if err != nil {
		_ = instance.Close()

		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

type step struct {
	run  func(*migrate.Migrate) error
	done string
}

var steps = map[string]step{
	ActionUp:     {run: (*migrate.Migrate).Up, done: "Database migrations applied"},
	ActionStepUp: {run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Applied one migration"},
	ActionDown:   {run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Rolled back one migration"},
	ActionDrop:   {run: (*migrate.Migrate).Down, done: "Rolled back every migration"},
}

// Runner applies action to the configured store. Having nothing to do is not an error.
func Runner(config *config.Config, action string) error {
	step, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q", action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err = step.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", action, err)
	}

	log.Info().Str("driver", config.DB.Driver).Str("action", action).Msg(step.done)

	return nil
}

// Up applies every pending migration.
func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

// Package databasetest provides an isolated, migrated SQLite store for tests.
package databasetest

import (
	"path/filepath"
	"roomapi/config"
	"roomapi/helper"
	"roomapi/infras/database"
	"roomapi/shared/constant"
	"testing"

	"github.com/stretchr/testify/require"
)

// Config returns a configuration pointing at a fresh SQLite file inside the test's temp dir.
func Config(t testing.TB) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Driver = constant.DBDriverSQLite
	cfg.DB.SQLite.File = filepath.Join(t.TempDir(), "rooms.db")
	cfg.DB.MigrationTable = "schema_migrations"
	cfg.Room.NameMaxLength = constant.DefaultRoomNameMaxLength

	return cfg
}

// NewTx migrates a fresh store and returns a connection whose reads and writes share one
// transaction. The transaction is rolled back when the test finishes.
func NewTx(t testing.TB) *database.Connection {
	t.Helper()

	cfg := Config(t)
	require.NoError(t, helper.Up(cfg))

	db, err := database.OpenSQLite(cfg.DB.SQLite.File)
	require.NoError(t, err)

	db.SetMaxOpenConns(1)

	tx, err := db.Beginx()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = tx.Rollback()
		_ = db.Close()
	})

	return &database.Connection{Read: tx, Write: tx}
}

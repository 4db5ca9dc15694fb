package database

import (
	"context"
	"roomapi/config"
	"roomapi/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// DB is the part of sqlx shared by *sqlx.DB and *sqlx.Tx that repositories rely on.
type DB interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

type Connection struct {
	Read  DB
	Write DB
}

// New connects to the configured store. PostgreSQL gets separate read and write pools,
// SQLite serves both from one pool.
func New(config *config.Config) *Connection {
	if config.DB.Driver == constant.DBDriverSQLite {
		db, err := OpenSQLite(config.DB.SQLite.File)
		if err != nil {
			log.Fatal().Err(err).Str("file", config.DB.SQLite.File).Msg("Failed to open sqlite database")
		}

		return &Connection{
			Read:  db,
			Write: db,
		}
	}

	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// WriteDSN returns the driver name and data source name of the primary (write) store.
func WriteDSN(config *config.Config) (driverName, dsn string) {
	if config.DB.Driver == constant.DBDriverSQLite {
		return constant.DBDriverSQLite, SQLiteDSN(config.DB.SQLite.File)
	}

	write := config.DB.Postgres.Write

	return constant.DBDriverPostgres, PostgresDSN(
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		getDBName(*config, write.Name),
		write.SSLMode,
	)
}

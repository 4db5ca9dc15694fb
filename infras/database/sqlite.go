package database

//nolint:revive
import (
	"fmt"
	"roomapi/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver(constant.DBDriverSQLite, sqlx.QUESTION)
}

// SQLiteDSN enables WAL, foreign keys and a busy timeout on every pooled connection.
func SQLiteDSN(file string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", file)
}

// OpenSQLite opens the embedded store kept in file.
func OpenSQLite(file string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(constant.DBDriverSQLite, SQLiteDSN(file))
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite %s: %w", file, err)
	}

	log.Info().Str("file", file).Msg("Connected to sqlite database")

	return db, nil
}

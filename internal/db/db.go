package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// DriverFor picks the database/sql driver for a DSN. Postgres URLs go to pgx,
// everything else is handed to SQLite.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Connect opens the store and verifies it is reachable. The pool is capped at a single
// connection: every statement of the process serializes through it.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	driver := DriverFor(dsn)

	if driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.InfoContext(ctx, "Connected to database", "driver", driver)
	return conn, nil
}

// sqliteDSN asks the driver to enable foreign keys on every connection it opens, so a
// replaced pool connection keeps enforcing references and cascades.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// InitializeSchema drops and recreates every table. All existing data is lost.
func InitializeSchema(ctx context.Context, conn *sqlx.DB) error {
	d := dialectFor(conn.DriverName())

	stmts := []string{
		"DROP TABLE IF EXISTS favorites",
		"DROP TABLE IF EXISTS products",
		"DROP TABLE IF EXISTS users",
	}
	stmts = append(stmts, d.createTables("")...)

	if err := execAll(ctx, conn, stmts); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Tables created successfully")
	return nil
}

// EnsureSchema creates any missing table and leaves existing data alone.
func EnsureSchema(ctx context.Context, conn *sqlx.DB) error {
	d := dialectFor(conn.DriverName())
	if err := execAll(ctx, conn, d.createTables("IF NOT EXISTS ")); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Schema verified")
	return nil
}

func execAll(ctx context.Context, conn *sqlx.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

type dialect struct {
	serial string
	text   string
}

func dialectFor(driver string) dialect {
	if driver == DriverPostgres {
		return dialect{serial: "SERIAL PRIMARY KEY", text: "VARCHAR(255)"}
	}
	return dialect{serial: "INTEGER PRIMARY KEY AUTOINCREMENT", text: "TEXT"}
}

// createTables returns the DDL in dependency order. ifNotExists is either empty or
// "IF NOT EXISTS ".
func (d dialect) createTables(ifNotExists string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE %susers (
	id %s,
	username %s UNIQUE NOT NULL,
	password %s NOT NULL
)`, ifNotExists, d.serial, d.text, d.text),
		fmt.Sprintf(`CREATE TABLE %sproducts (
	id %s,
	name %s NOT NULL
)`, ifNotExists, d.serial, d.text),
		fmt.Sprintf(`CREATE TABLE %sfavorites (
	id %s,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	UNIQUE (user_id, product_id)
)`, ifNotExists, d.serial),
	}
}

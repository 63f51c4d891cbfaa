package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "acme.db")
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, DriverPostgres, DriverFor("postgres://u:p@localhost:5432/the_acme_store"))
	assert.Equal(t, DriverPostgres, DriverFor("postgresql://localhost/the_acme_store"))
	assert.Equal(t, DriverSQLite, DriverFor("file:acme.db"))
	assert.Equal(t, DriverSQLite, DriverFor(":memory:"))
}

func TestInitializeSchema_ResetsData(t *testing.T) {
	ctx := context.Background()
	conn, err := Connect(ctx, openTestDB(t))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitializeSchema(ctx, conn))
	_, err = conn.ExecContext(ctx, `INSERT INTO users (username, password) VALUES ('john_doe', 'x')`)
	require.NoError(t, err)

	require.NoError(t, InitializeSchema(ctx, conn))

	var count int
	require.NoError(t, conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 0, count)
}

func TestEnsureSchema_KeepsData(t *testing.T) {
	ctx := context.Background()
	conn, err := Connect(ctx, openTestDB(t))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, EnsureSchema(ctx, conn))
	_, err = conn.ExecContext(ctx, `INSERT INTO products (name) VALUES ('Product A')`)
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(ctx, conn))

	var count int
	require.NoError(t, conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`))
	assert.Equal(t, 1, count)
}

func TestSchema_CascadesAndUniquePair(t *testing.T) {
	ctx := context.Background()
	conn, err := Connect(ctx, openTestDB(t))
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, InitializeSchema(ctx, conn))

	_, err = conn.ExecContext(ctx, `INSERT INTO users (id, username, password) VALUES (1, 'john_doe', 'x')`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO products (id, name) VALUES (1, 'Product A')`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO favorites (user_id, product_id) VALUES (1, 1)`)
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx, `INSERT INTO favorites (user_id, product_id) VALUES (1, 1)`)
	assert.Error(t, err, "duplicate pair must be rejected")

	_, err = conn.ExecContext(ctx, `INSERT INTO favorites (user_id, product_id) VALUES (1, 99)`)
	assert.Error(t, err, "dangling product must be rejected")

	_, err = conn.ExecContext(ctx, `DELETE FROM users WHERE id = 1`)
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM favorites`))
	assert.Equal(t, 0, count)
}

func TestSchema_ProductDeleteCascades(t *testing.T) {
	ctx := context.Background()
	conn, err := Connect(ctx, openTestDB(t))
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, InitializeSchema(ctx, conn))

	_, err = conn.ExecContext(ctx, `INSERT INTO users (id, username, password) VALUES (1, 'john_doe', 'x')`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO products (id, name) VALUES (1, 'Product A'), (2, 'Product B')`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO favorites (user_id, product_id) VALUES (1, 1), (1, 2)`)
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx, `DELETE FROM products WHERE id = 1`)
	require.NoError(t, err)

	var productIDs []int64
	require.NoError(t, conn.SelectContext(ctx, &productIDs, `SELECT product_id FROM favorites`))
	assert.Equal(t, []int64{2}, productIDs)

	var users int
	require.NoError(t, conn.GetContext(ctx, &users, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 1, users)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "acme.db?_pragma=foreign_keys(1)", sqliteDSN("acme.db"))
	assert.Equal(t, "file:acme.db?mode=rwc&_pragma=foreign_keys(1)", sqliteDSN("file:acme.db?mode=rwc"))
	assert.Equal(t, "acme.db?_pragma=foreign_keys(0)", sqliteDSN("acme.db?_pragma=foreign_keys(0)"))
}

func TestConnect_ForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	conn, err := Connect(ctx, openTestDB(t))
	require.NoError(t, err)
	defer conn.Close()

	// Holding the first connection forces the pool to open a second one.
	conn.SetMaxOpenConns(2)
	first, err := conn.Connx(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := conn.Connx(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, c := range []*sqlx.Conn{first, second} {
		var enabled int
		require.NoError(t, c.GetContext(ctx, &enabled, `PRAGMA foreign_keys`))
		assert.Equal(t, 1, enabled)
	}
}

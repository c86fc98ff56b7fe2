package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePG отвечает на служебные запросы драйвера golang-migrate без настоящей БД.
type fakePG struct {
	mu          sync.Mutex
	tableLookup []driver.NamedValue
	execs       []string
}

func (f *fakePG) Connect(context.Context) (driver.Conn, error) { return &fakePGConn{db: f}, nil }
func (f *fakePG) Driver() driver.Driver                        { return nil }

type fakePGConn struct{ db *fakePG }

func (c *fakePGConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare is not supported")
}
func (c *fakePGConn) Close() error              { return nil }
func (c *fakePGConn) Begin() (driver.Tx, error) { return nil, errors.New("tx is not supported") }

func (c *fakePGConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	switch {
	case strings.Contains(query, "CURRENT_DATABASE"):
		return &singleValueRows{value: "keystone_site"}, nil
	case strings.Contains(query, "CURRENT_SCHEMA"):
		return &singleValueRows{value: "public"}, nil
	case strings.Contains(query, "information_schema.tables"):
		c.db.mu.Lock()
		c.db.tableLookup = args
		c.db.mu.Unlock()
		return &singleValueRows{value: int64(1)}, nil
	}
	return nil, errors.New("unexpected query: " + query)
}

func (c *fakePGConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.db.mu.Lock()
	c.db.execs = append(c.db.execs, query)
	c.db.mu.Unlock()
	return driver.RowsAffected(0), nil
}

type singleValueRows struct {
	value driver.Value
	done  bool
}

func (r *singleValueRows) Columns() []string { return []string{"value"} }
func (r *singleValueRows) Close() error      { return nil }
func (r *singleValueRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	dest[0] = r.value
	return nil
}

func TestMigrationsDriverConfig_AcceptedByPostgresDriver(t *testing.T) {
	fake := &fakePG{}
	db := sql.OpenDB(fake)

	var (
		drv postgresDriverCloser
		err error
	)
	require.NotPanics(t, func() {
		drv, err = postgres.WithInstance(db, migrationsDriverConfig())
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = drv.Close() })

	require.Len(t, fake.tableLookup, 2)
	assert.Equal(t, "public", fake.tableLookup[0].Value)
	assert.Equal(t, migrationsTable, fake.tableLookup[1].Value)
	assert.Contains(t, strings.Join(fake.execs, "\n"), "pg_advisory_lock")
	assert.Contains(t, strings.Join(fake.execs, "\n"), "pg_advisory_unlock")
}

type postgresDriverCloser interface{ Close() error }

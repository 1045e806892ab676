package storageprovider

import (
	"context"
	"database/sql"
	"embed"

	"assetdesk/providers"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type SQLProvider struct {
	db *sqlx.DB
}

// NewSQLProvider connects with driver ("postgres" or "sqlite") and applies the
// session schema migrations.
func NewSQLProvider(driver, dsn string) (providers.StorageProvider, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s", driver)
	}
	if err := migrateUp(db, driver); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migration failed")
	}
	return &SQLProvider{db: db}, nil
}

// NewSQLProviderWithDB wraps an already migrated connection.
func NewSQLProviderWithDB(db *sqlx.DB) *SQLProvider {
	return &SQLProvider{db: db}
}

func (p *SQLProvider) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.GetContext(ctx, &value, p.db.Rebind(`SELECT value FROM session_entries WHERE name = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get %s", key)
	}
	return value, true, nil
}

func (p *SQLProvider) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, p.db.Rebind(`INSERT INTO session_entries (name, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`), key, value)
	return errors.Wrapf(err, "set %s", key)
}

func (p *SQLProvider) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM session_entries WHERE name IN (?)`, keys)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, p.db.Rebind(query), args...)
	return errors.Wrap(err, "delete session entries")
}

func (p *SQLProvider) Close() error {
	return p.db.Close()
}

func migrateUp(db *sqlx.DB, driver string) error {
	var (
		dbDriver database.Driver
		err      error
	)
	switch driver {
	case DriverPostgres:
		dbDriver, err = postgres.WithInstance(db.DB, &postgres.Config{})
	case DriverSQLite:
		dbDriver, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	default:
		return errors.Errorf("unsupported sql driver %q", driver)
	}
	if err != nil {
		return err
	}

	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

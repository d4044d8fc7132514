package warehouse

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateWarehouse moves the warehouse schema to targetVersion. A negative
// target means latest, zero rolls every migration back, and a positive
// target selects that exact version.
func MigrateWarehouse(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported for NoneBackend")
	}

	db, driver, err := openMigrationTarget(backend, connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	src, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to access embedded migrations: %w", err)
	}
	sourceDriver, err := iofs.New(src, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "finhealth", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	current, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read current migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("warehouse schema is dirty at version %d, fix or force the version before migrating", current)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("Warehouse schema already at version %d, nothing to apply\n", current)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to migrate warehouse schema: %w", err)
	}

	// After a full rollback Version reports ErrNilVersion, which reads as 0.
	applied, _, _ := m.Version()
	fmt.Printf("Warehouse schema moved from version %d to version %d\n", current, applied)
	return nil
}

// openMigrationTarget opens the backend database and wraps it in the
// matching golang-migrate driver.
func openMigrationTarget(backend schema.DatabaseBackend, connStr string) (*sql.DB, database.Driver, error) {
	var db *sql.DB
	var err error
	switch backend {
	case schema.SQLiteBackend:
		if connStr == "" {
			connStr = contract.GetWarehouseDBFilePath()
		}
		db, err = sql.Open("sqlite", connStr)
	case schema.MySQLBackend:
		db, err = sql.Open("mysql", connStr)
	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
	default:
		return nil, nil, fmt.Errorf("unsupported backend: %s", backend)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping %s database: %w", backend, err)
	}

	var driver database.Driver
	switch backend {
	case schema.SQLiteBackend:
		driver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case schema.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	default:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	}
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create %s migration driver: %w", backend, err)
	}
	return db, driver, nil
}

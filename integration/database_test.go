//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestFinhealthWithMySQL tests the finhealth CLI with a MySQL backend.
func TestFinhealthWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "finhealth",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	// multiStatements lets one migration file carry several DDL statements
	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/finhealth?parseTime=true&multiStatements=true", host, port.Port())
	runWarehouseFlow(t, "mysql", connStr)
}

// TestFinhealthWithPostgres tests the finhealth CLI with a PostgreSQL backend.
func TestFinhealthWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runWarehouseFlow(t, "postgresql", connStr)
}

// runWarehouseFlow exercises the full CLI flow against one backend.
func runWarehouseFlow(t *testing.T, backend, connStr string) {
	workDir := t.TempDir()
	dataDir := filepath.Join(workDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	writeSampleStatements(t, dataDir)

	// Set environment variables
	_ = os.Setenv("FINHEALTH_WAREHOUSE_BACKEND", backend)
	_ = os.Setenv("FINHEALTH_WAREHOUSE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("FINHEALTH_WAREHOUSE_BACKEND") }()
	defer func() { _ = os.Unsetenv("FINHEALTH_WAREHOUSE_DB_CONNECT") }()

	// Run finhealth warehouse migrate
	err := runFinhealthCommand(t, "warehouse", "migrate")
	require.NoError(t, err)

	// Run finhealth warehouse clear
	err = runFinhealthCommand(t, "warehouse", "clear")
	require.NoError(t, err)

	// Run finhealth pipeline against the sample data
	err = runFinhealthCommand(t, "pipeline", "--tickers", "AAPL,MSFT", "--data-dir", dataDir)
	require.NoError(t, err)

	// Run finhealth rank
	err = runFinhealthCommand(t, "rank", "--limit", "5")
	require.NoError(t, err)

	// Run finhealth report for one company
	err = runFinhealthCommand(t, "report", "MSFT")
	require.NoError(t, err)

	// Run finhealth warehouse status
	err = runFinhealthCommand(t, "warehouse", "status")
	require.NoError(t, err)
}

//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestInkwellWithMySQL tests the inkwell CLI with a MySQL backend.
func TestInkwellWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "inkwell",
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

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/inkwell?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("INKWELL_STORE_BACKEND", "mysql")
	_ = os.Setenv("INKWELL_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("INKWELL_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("INKWELL_STORE_DB_CONNECT") }()

	runInkwellWorkflow(t)
}

// TestInkwellWithPostgres tests the inkwell CLI with a PostgreSQL backend.
func TestInkwellWithPostgres(t *testing.T) {
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

	// Set environment variables
	_ = os.Setenv("INKWELL_STORE_BACKEND", "postgresql")
	_ = os.Setenv("INKWELL_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("INKWELL_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("INKWELL_STORE_DB_CONNECT") }()

	runInkwellWorkflow(t)
}

// runInkwellWorkflow exercises the tracking lifecycle against the configured backend.
func runInkwellWorkflow(t *testing.T) {
	vault := writeSampleVault(t)

	// Run inkwell store clear
	err := runInkwellCommand(t, "store", "clear")
	require.NoError(t, err)

	// Run inkwell store migrate
	err = runInkwellCommand(t, "store", "migrate")
	require.NoError(t, err)

	// Run inkwell track on the sample vault
	err = runInkwellCommand(t, "track", vault)
	require.NoError(t, err)

	// Run inkwell stats
	err = runInkwellCommand(t, "stats")
	require.NoError(t, err)

	// Run inkwell streak
	err = runInkwellCommand(t, "streak")
	require.NoError(t, err)

	// Run inkwell store status
	err = runInkwellCommand(t, "store", "status")
	require.NoError(t, err)
}

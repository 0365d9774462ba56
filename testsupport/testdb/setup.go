package testdb

import (
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"

	tcpg "github.com/mpapenbr/f1gp-track-go/testsupport/tcpostgres"
)

// InitTestDb returns a pool on an empty track catalog. Without TESTDB_URL a
// postgres container is started, the test is skipped if no container runtime
// is available.
func InitTestDb(t *testing.T) *pgxpool.Pool {
	t.Helper()
	var pool *pgxpool.Pool

	if os.Getenv("TESTDB_URL") != "" {
		pool = tcpg.SetupExternalTestDb()
	} else {
		testcontainers.SkipIfProviderIsNotHealthy(t)
		pool = tcpg.SetupTestDb()
	}
	tcpg.ClearAllTables(pool)
	t.Cleanup(pool.Close)
	return pool
}

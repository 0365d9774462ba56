//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpapenbr/f1gp-track-go/pkg/db/migrate"
	database "github.com/mpapenbr/f1gp-track-go/pkg/db/postgres"
)

// SetupTestDb returns a pool on the track catalog in the shared test container
func SetupTestDb() *pgxpool.Pool {
	catalog, err := StartCatalog(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	return newPool(catalog.URL)
}

// SetupExternalTestDb uses the database referenced by TESTDB_URL
func SetupExternalTestDb() *pgxpool.Pool {
	dbURL := os.Getenv("TESTDB_URL")
	if err := migrate.MigrateDb(dbURL); err != nil {
		log.Fatal(err)
	}
	return newPool(dbURL)
}

func newPool(dbURL string) *pgxpool.Pool {
	pool, err := database.InitWithURL(context.Background(), dbURL)
	if err != nil {
		log.Fatal(err)
	}
	return pool
}

func ClearTrackFileTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from track_file")
}

func ClearAllTables(pool *pgxpool.Pool) {
	ClearTrackFileTable(pool)
}

package tcpostgres

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mpapenbr/f1gp-track-go/pkg/db/migrate"
)

const (
	defaultImage     = "postgres:16-alpine"
	defaultContainer = "gptrack-test"
	catalogPort      = nat.Port("5432/tcp")
	readyLog         = "database system is ready to accept connections"
)

// Catalog is a postgres container holding a migrated track catalog
type Catalog struct {
	testcontainers.Container
	// URL connects to the catalog database from the host
	URL string
}

type catalogSettings struct {
	image    string
	name     string
	user     string
	password string
	database string
	startup  time.Duration
	migrate  func(dbURL string) error
}

type CatalogOption func(s *catalogSettings)

func defaultSettings() catalogSettings {
	return catalogSettings{
		image:    defaultImage,
		name:     defaultContainer,
		user:     "postgres",
		password: "password",
		database: "postgres",
		startup:  5 * time.Second,
		migrate:  migrate.MigrateDb,
	}
}

func WithImage(image string) CatalogOption {
	return func(s *catalogSettings) { s.image = image }
}

// WithName names the container. A running container with this name is
// reused, an empty name starts a fresh container.
func WithName(name string) CatalogOption {
	return func(s *catalogSettings) { s.name = name }
}

func WithCredentials(user, password, database string) CatalogOption {
	return func(s *catalogSettings) {
		s.user, s.password, s.database = user, password, database
	}
}

func WithStartupTimeout(d time.Duration) CatalogOption {
	return func(s *catalogSettings) { s.startup = d }
}

// WithMigration replaces the schema setup run against the catalog URL.
// nil skips the migration.
func WithMigration(fn func(dbURL string) error) CatalogOption {
	return func(s *catalogSettings) { s.migrate = fn }
}

func (s *catalogSettings) request() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image: s.image,
		Name:  s.name,
		Env: map[string]string{
			"POSTGRES_USER":     s.user,
			"POSTGRES_PASSWORD": s.password,
			"POSTGRES_DB":       s.database,
		},
		ExposedPorts: []string{string(catalogPort)},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		// postgres logs the ready message twice, the first one is from the
		// init phase
		WaitingFor: wait.ForLog(readyLog).
			WithOccurrence(2).
			WithStartupTimeout(s.startup),
	}
}

func (s *catalogSettings) url(host, port string) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		s.user, s.password, host, port, s.database)
}

// StartCatalog starts (or reuses) a postgres container and applies the
// track catalog migrations.
func StartCatalog(ctx context.Context, opts ...CatalogOption) (*Catalog, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: s.request(),
			Started:          true,
			Reuse:            s.name != "",
		})
	if err != nil {
		return nil, err
	}
	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	mapped, err := container.MappedPort(ctx, catalogPort)
	if err != nil {
		return nil, err
	}
	ret := &Catalog{Container: container, URL: s.url(host, mapped.Port())}
	if s.migrate != nil {
		if err := s.migrate(ret.URL); err != nil {
			return nil, fmt.Errorf("migrate catalog: %w", err)
		}
	}
	return ret, nil
}

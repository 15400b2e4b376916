//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"pet-resort-api/cmd/bootstrap"
	"pet-resort-api/cmd/bootstrap/components"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/config"
	"pet-resort-api/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "resort"
	pgPassword = "resortpass"
	pgPort     = "5432/tcp"
)

// The container is shared by every suite in the process; each suite gets its own database.
var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

func postgresDSN(host string, port nat.Port, database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, host, port.Port(), database)
}

func startPostgres() (testcontainers.Container, error) {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				Name:         "pet-resort-postgres-e2e",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// Durability is irrelevant for throwaway data.
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return postgresDSN(host, port, "postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
	})
	return container, containerErr
}

func containerAddr(ctx context.Context, c testcontainers.Container) (string, nat.Port, error) {
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return "", "", err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", "", err
	}
	return host, port, nil
}

// createDatabase makes a fresh database for one suite and drops it on cleanup.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()

	name := "resort_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := postgresDSN(host, port, "postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to connect as admin")
	defer admin.Close()

	// CREATE DATABASE can collide with template1 being in use by a parallel suite.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// migrationsDir walks up from the package directory until it finds migrations/.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found")
		}
		dir = parent
	}
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// startApp wires the production modules around an already migrated pool.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.BrokerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop application", "error", err.Error())
		}
	})
	return router
}

// SharedSuite gives each e2e suite a router backed by its own migrated database.
// Every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	c, err := startPostgres()
	require.NoError(t, err, "failed to start postgres container")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	host, port, err := containerAddr(ctx, c)
	require.NoError(t, err, "failed to resolve postgres address")

	s.Config = config.NewTestConfig()
	s.Config.DB = createDatabase(t, host, port)

	s.DB, err = db.Connect(ctx, s.Config.DB)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(s.DB.Close)

	require.NoError(t, applyMigrations(ctx, s.DB), "failed to apply migrations")

	s.Router = startApp(t, s.DB, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}

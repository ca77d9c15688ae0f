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

	"course-enrollment/cmd/bootstrap"
	"course-enrollment/cmd/bootstrap/components"
	"course-enrollment/internal/infra/db"
	"course-enrollment/internal/pkg/config"
	"course-enrollment/tests/common/dbtest"

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

// E2E_QUEUE_BACKEND=redis runs the suites against a Redis Streams container
// instead of the in-memory queue.
const queueBackendEnv = "E2E_QUEUE_BACKEND"

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

var (
	containersOnce sync.Once
	containers     testContainers
	containersErr  error
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string {
	return fmt.Sprintf("%s:%s", e.Host, e.Port.Port())
}

type testContainers struct {
	Postgres endpoint
	Redis    *endpoint
}

// SharedSuite starts the gateway and the command worker against a fresh database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	containersOnce.Do(func() {
		containers, containersErr = startContainers(queueBackend())
	})
	require.NoError(t, containersErr, "テスト用コンテナの起動に失敗")

	dbConfig := createDatabase(t, containers.Postgres)
	pool, _, err := db.Connect(t.Context(), dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(t.Context(), pool), "マイグレーションに失敗")

	cfg := testConfig(dbConfig, containers.Redis)
	router, app := startApp(t, pool, cfg)

	s.DB = pool
	s.Router = router
	s.Config = cfg

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースのリセットに失敗")
}

func queueBackend() string {
	if v := os.Getenv(queueBackendEnv); v != "" {
		return v
	}
	return config.QueueBackendMemory
}

// startApp runs the gateway plus the standalone worker module, so commands
// published over HTTP are consumed by the same runner production uses.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, *fx.App) {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.QueueModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.WorkerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")
	require.NotNil(t, router, "Routerのセットアップに失敗")
	return router, app
}

func testConfig(dbConfig config.DBConfig, redisEndpoint *endpoint) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	if redisEndpoint == nil {
		cfg.Queue.Backend = config.QueueBackendMemory
		return cfg
	}
	// A stream per suite keeps suites from consuming each other's commands.
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	cfg.Queue.Backend = config.QueueBackendRedis
	cfg.Queue.RedisAddr = redisEndpoint.Addr()
	cfg.Queue.Stream = "enrollments-" + suffix
	cfg.Queue.BlockTimeout = 200 * time.Millisecond
	return cfg
}

// createDatabase gives each suite its own database inside the shared container.
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()
	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// CREATE DATABASE can collide on the template lock when suites start together.
	require.Eventually(t, func() bool {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err != nil {
			slog.Warn("データベース作成を再試行中", "database", name, "error", err.Error())
		}
		return err == nil
	}, 15*time.Second, 500*time.Millisecond, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// applyMigrations runs migrations/*.sql in name order. The directory is found
// by walking up from the package under test to the module root.
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
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

func migrationsDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		if parent := filepath.Dir(dir); parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", wd)
		}
	}
}

func startContainers(backend string) (testContainers, error) {
	var out testContainers

	pg, err := startContainer(testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}, "5432/tcp")
	if err != nil {
		return out, fmt.Errorf("postgres: %w", err)
	}
	out.Postgres = pg

	if backend != config.QueueBackendRedis {
		return out, nil
	}
	rd, err := startContainer(testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}, "6379/tcp")
	if err != nil {
		return out, fmt.Errorf("redis: %w", err)
	}
	out.Redis = &rd
	return out, nil
}

// startContainer relies on ryuk to remove the container when the test binary exits.
func startContainer(req testcontainers.ContainerRequest, port string) (endpoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

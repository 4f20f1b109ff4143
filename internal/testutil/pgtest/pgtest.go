// Package pgtest starts a disposable Postgres for repository integration
// tests and applies the embedded migrations to it.
package pgtest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"blogicum-backend/migrations"
)

// Setup returns a pool on a fresh, migrated database. Skipped with -short.
func Setup(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test: skipped in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("blogicum_test"),
		postgres.WithUsername("blogicum"),
		postgres.WithPassword("blogicum"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	migrateUp(t, connStr)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func migrateUp(t *testing.T, connStr string) {
	t.Helper()

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		t.Fatalf("load migrations: %v", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, connStr)
	if err != nil {
		t.Fatalf("init migrator: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("apply migrations: %v", err)
	}
}

// Exec runs a seeding statement and returns the id from its RETURNING clause.
func Exec(t *testing.T, pool *pgxpool.Pool, query string, args ...interface{}) int64 {
	t.Helper()
	var id int64
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&id); err != nil {
		t.Fatalf("seed %q: %v", query, err)
	}
	return id
}

func InsertUser(t *testing.T, pool *pgxpool.Pool, username string) int64 {
	t.Helper()
	return Exec(t, pool,
		`INSERT INTO users (username, email, password_hash) VALUES ($1, $1 || '@example.com', 'x') RETURNING id`,
		username,
	)
}

func InsertCategory(t *testing.T, pool *pgxpool.Pool, slug string, published bool) int64 {
	t.Helper()
	return Exec(t, pool,
		`INSERT INTO categories (title, description, slug, is_published) VALUES ($1, '', $1, $2) RETURNING id`,
		slug, published,
	)
}

func InsertLocation(t *testing.T, pool *pgxpool.Pool, name string, published bool) int64 {
	t.Helper()
	return Exec(t, pool,
		`INSERT INTO locations (name, is_published) VALUES ($1, $2) RETURNING id`,
		name, published,
	)
}

// InsertPost inserts a post; categoryID may be 0 for none.
func InsertPost(t *testing.T, pool *pgxpool.Pool, authorID int64, title string, pubDate time.Time, published bool, categoryID int64) int64 {
	t.Helper()
	var category *int64
	if categoryID != 0 {
		category = &categoryID
	}
	return Exec(t, pool,
		`INSERT INTO posts (title, text, pub_date, is_published, author_id, category_id)
		 VALUES ($1, 'text', $2, $3, $4, $5) RETURNING id`,
		title, pubDate, published, authorID, category,
	)
}

package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestRunMigrations(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	assert.NoError(t, RunMigrations(db.DB))
	// second run is a no-op
	assert.NoError(t, RunMigrations(db.DB))

	for _, table := range []string{"users", "user_transactions", "admin_profiles", "recharge_packs"} {
		var exists bool
		err := db.Get(&exists, "SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table)
		assert.NoError(t, err)
		assert.True(t, exists, table)
	}

	t.Run("rejects non positive amount", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO user_transactions (id, user_id, amount, type)
			VALUES (gen_random_uuid(), gen_random_uuid(), 0, 'winning')`)
		assert.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO user_transactions (id, user_id, amount, type)
			VALUES (gen_random_uuid(), gen_random_uuid(), 10, 'deposit')`)
		assert.Error(t, err)
	})
}

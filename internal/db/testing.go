package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateTestPool connects to TEST_POSTGRESQL_URL and applies all migrations.
func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	if _, err := MigrateUp(connString); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), `TRUNCATE "user" CASCADE`)
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}

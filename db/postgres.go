package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open creates the database handle. The connection itself is lazy, so a
// missing or wrong credential does not fail here; it surfaces on first use.
func Open(connString string) (*sql.DB, error) {
	database, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return database, nil
}

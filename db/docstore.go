package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DocumentStore is the write surface of the hierarchical document database.
// Paths alternate collection and document segments; Add appends a document
// with a server-generated identifier to the given collection.
type DocumentStore interface {
	Add(ctx context.Context, collection string, data map[string]interface{}) (string, error)
}

// PostgresStore keeps documents in a single JSONB-backed table, one row per
// document, keyed by the full hierarchical path.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(database *sql.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

func (s *PostgresStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("error encoding document: %w", err)
	}

	id := uuid.New().String()
	path := collection + "/" + id

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO documents (id, collection, path, data)
        VALUES ($1, $2, $3, $4)
    `, id, collection, path, payload)
	if err != nil {
		return "", fmt.Errorf("error inserting document: %w", err)
	}

	return id, nil
}

package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Documents are addressed by a hierarchical path of alternating
-- collection/document segments, e.g.
-- artifacts/{appId}/public/data/courses/{courseId}/posts/{postId}

CREATE TABLE IF NOT EXISTS documents (
    id VARCHAR(64) NOT NULL,
    collection TEXT NOT NULL,
    path TEXT PRIMARY KEY,
    data JSONB NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
`

// InitSchema creates the documents table if it does not exist yet
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(Schema); err != nil {
		return fmt.Errorf("error initializing schema: %w", err)
	}
	return nil
}

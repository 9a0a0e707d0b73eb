package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS quizzes (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id       TEXT NOT NULL,
	topic          TEXT NOT NULL,
	question       TEXT NOT NULL,
	options        TEXT NOT NULL,
	correct_answer TEXT NOT NULL,
	user_answer    TEXT NOT NULL DEFAULT '',
	is_correct     INTEGER NOT NULL DEFAULT 0,
	created_at     TIMESTAMP NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quizzes_owner_id ON quizzes(owner_id);

CREATE TABLE IF NOT EXISTS describes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id   TEXT NOT NULL,
	topic      TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_describes_owner_id ON describes(owner_id);
`

// NewSQLXSqliteDB opens the sqlite database at path and ensures the schema
// exists. Use ":memory:" for an ephemeral database.
func NewSQLXSqliteDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

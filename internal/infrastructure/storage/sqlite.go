package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id      INTEGER PRIMARY KEY,
    chat_id INTEGER NOT NULL,
    state   TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS scans (
    id           TEXT    PRIMARY KEY,
    user_id      INTEGER NOT NULL,
    source       TEXT    NOT NULL,
    width        INTEGER NOT NULL,
    height       INTEGER NOT NULL,
    segments     INTEGER NOT NULL,
    groups_count INTEGER NOT NULL,
    found        INTEGER NOT NULL,
    outline      TEXT,
    created_at   TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS scans_user_created ON scans (user_id, created_at);
`

// OpenSQLite открывает sqlite по указанному пути и применяет схему.
func OpenSQLite(ctx context.Context, dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

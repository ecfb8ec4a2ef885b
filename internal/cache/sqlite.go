package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
create table if not exists transcripts (
	cache_key text primary key,
	text text not null,
	created_at timestamp not null default current_timestamp
);`

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite cache at path
func Open(path string) (Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}
	// the pipeline is sequential; one connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite cache: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var text string
	err := s.db.
		QueryRowContext(ctx, "select text from transcripts where cache_key = $1", key).
		Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get transcript by key: %w", err)
	}

	return text, true, nil
}

func (s *sqliteStore) Put(ctx context.Context, key, text string) error {
	_, err := s.db.ExecContext(
		ctx,
		"insert into transcripts (cache_key, text) values ($1, $2) on conflict(cache_key) do update set text = excluded.text",
		key,
		text,
	)
	if err != nil {
		return fmt.Errorf("persisting transcript into sqlite: %w", err)
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

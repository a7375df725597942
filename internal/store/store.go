package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("store: not found")

// Store persists worlds, bookmarks and search jobs in a SQLite database.
// Job result payloads are zstd-compressed at rest.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

const schema = `
CREATE TABLE IF NOT EXISTS worlds (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	seed TEXT NOT NULL,
	description TEXT,
	is_active INTEGER DEFAULT 0,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bookmarks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	world_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	x INTEGER NOT NULL,
	y INTEGER DEFAULT 64,
	z INTEGER NOT NULL,
	dimension TEXT DEFAULT 'overworld',
	category TEXT,
	icon TEXT DEFAULT '📍',
	notes TEXT,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (world_id) REFERENCES worlds(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS jobs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	world_id INTEGER NOT NULL,
	job_type TEXT NOT NULL,
	parameters TEXT,
	status TEXT DEFAULT 'pending',
	progress INTEGER DEFAULT 0,
	result BLOB,
	error_message TEXT,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	started_at TEXT,
	completed_at TEXT,
	FOREIGN KEY (world_id) REFERENCES worlds(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_bookmarks_world ON bookmarks(world_id);
CREATE INDEX IF NOT EXISTS idx_jobs_world ON jobs(world_id);
CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
`

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	return &Store{db: db, enc: enc, dec: dec}, nil
}

// Close releases the database and compression resources.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}

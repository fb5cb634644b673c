/*
Package cache stores the outcome of previous conversions in a SQLite database
so that converting an unchanged bitmap again skips decoding and packing.

Entries are keyed by a digest of the input bytes together with anything else
that influences the result, such as the bit order policy.
*/
package cache

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/pixel2jack/pack"
	_ "github.com/mattn/go-sqlite3" // register driver
)

// Entry is a cached conversion.
type Entry struct {
	Width  int
	Height int
	Filled int
	Rects  pack.Rectangles
}

// DB is the conversion cache.
type DB struct {
	db *sql.DB
}

// Key returns the cache key for the input bytes b decoded with the named bit
// order policy.
func Key(b []byte, policy string) string {
	return fmt.Sprintf("%X/%s", sha1.Sum(b), policy)
}

// Open opens, creating if necessary, the cache database in file.
func Open(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, digest TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, filled INTEGER NOT NULL, rects BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.db.Close()
}

// Find returns the entry stored under key, or nil if there isn't one.
func (db *DB) Find(key string) (*Entry, error) {
	var e Entry
	var rects []byte
	switch err := db.db.QueryRow("SELECT width, height, filled, rects FROM conversion WHERE digest = ?", key).Scan(&e.Width, &e.Height, &e.Filled, &rects); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		if err := e.Rects.UnmarshalBinary(rects); err != nil {
			return nil, fmt.Errorf("cache: corrupt entry %s: %w", key, err)
		}
		return &e, nil
	default:
		return nil, err
	}
}

// Store saves e under key, replacing any existing entry.
func (db *DB) Store(key string, e *Entry) error {
	b, err := e.Rects.MarshalBinary()
	if err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO conversion (digest, width, height, filled, rects) VALUES (?, ?, ?, ?, ?)", key, e.Width, e.Height, e.Filled, b); err != nil {
		return err
	}
	return nil
}

// Length returns the number of entries.
func (db *DB) Length() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM conversion").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

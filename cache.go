package image2bin

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Cache stores previously rendered listings keyed by a hash of the inputs
type Cache struct {
	db *sql.DB
}

// NewCache opens or creates the cache database in file
func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS listing (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, listing BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Get returns the listing stored for key or nil if there isn't one
func (c *Cache) Get(key string) ([]byte, error) {
	var listing []byte
	switch err := c.db.QueryRow("SELECT listing FROM listing WHERE sha1 = ?", key).Scan(&listing); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return listing, nil
	default:
		return nil, err
	}
}

// Put stores listing under key, replacing any existing entry
func (c *Cache) Put(key string, listing []byte) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO listing (sha1, listing) VALUES (?, ?)", key, listing); err != nil {
		return err
	}
	return nil
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}

package cache

import (
	"database/sql"
	"errors"
)

const searchTermKey = "search"

// GetSetting returns the value stored under key and whether it exists.
func (d *DB) GetSetting(key string) (string, bool, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// PutSetting stores value under key.
func (d *DB) PutSetting(key, value string) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// SearchTerm is the last submitted search term, kept in the settings
// table under the "search" key.
type SearchTerm struct {
	db *DB
}

// NewSearchTerm returns the search term store backed by db.
func NewSearchTerm(db *DB) *SearchTerm {
	return &SearchTerm{db: db}
}

// Load returns the saved term, or fallback when none has been saved.
func (s *SearchTerm) Load(fallback string) (string, error) {
	term, ok, err := s.db.GetSetting(searchTermKey)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	return term, nil
}

// Save persists term.
func (s *SearchTerm) Save(term string) error {
	return s.db.PutSetting(searchTermKey, term)
}

package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/fragmede/hackerstories/internal/stories"
)

// GetSearch retrieves the cached results of a search.
// Returns (stories, isFresh, error). stories is nil on cache miss.
func (d *DB) GetSearch(query string, ttl time.Duration) ([]stories.Story, bool, error) {
	row := d.db.QueryRow(`SELECT hits, fetched_at FROM searches WHERE query = ?`, searchKey(query))

	var hitsJSON string
	var fetchedAt int64
	err := row.Scan(&hitsJSON, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	result := []stories.Story{}
	if err := json.Unmarshal([]byte(hitsJSON), &result); err != nil {
		return nil, false, err
	}

	isFresh := time.Since(time.Unix(fetchedAt, 0)) < ttl
	return result, isFresh, nil
}

// PutSearch stores the results of a search.
func (d *DB) PutSearch(query string, result []stories.Story) error {
	if result == nil {
		result = []stories.Story{}
	}
	hitsJSON, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(`INSERT OR REPLACE INTO searches (query, hits, fetched_at) VALUES (?, ?, ?)`,
		searchKey(query), string(hitsJSON), time.Now().Unix())
	return err
}

// InvalidateSearch drops the cached results of a search.
func (d *DB) InvalidateSearch(query string) error {
	_, err := d.db.Exec(`DELETE FROM searches WHERE query = ?`, searchKey(query))
	return err
}

// PruneSearches deletes cached searches older than maxAge.
func (d *DB) PruneSearches(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := d.db.Exec(`DELETE FROM searches WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// searchKey normalizes a query so "React " and "react" share an entry;
// the search API is case-insensitive too.
func searchKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

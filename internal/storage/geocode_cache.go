package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// CachedLocation is a previously resolved geocoding result.
type CachedLocation struct {
	Query       string
	Lat         float64
	Lng         float64
	DisplayName string
	FetchedAt   time.Time
}

// GeocodeCacheStore caches geocoding lookups so repeated searches for the
// same text don't hit the network endpoint again.
type GeocodeCacheStore struct {
	db *DB
}

// NewGeocodeCacheStore creates a new GeocodeCacheStore.
func NewGeocodeCacheStore(db *DB) *GeocodeCacheStore {
	return &GeocodeCacheStore{db: db}
}

// Get returns the cached result for query, or false if none exists.
func (s *GeocodeCacheStore) Get(query string) (*CachedLocation, bool, error) {
	loc := &CachedLocation{Query: query}
	err := s.db.conn.QueryRow(
		`SELECT lat, lng, display_name, fetched_at FROM geocode_cache WHERE query = ?`, query,
	).Scan(&loc.Lat, &loc.Lng, &loc.DisplayName, &loc.FetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read geocode cache: %w", err)
	}
	return loc, true, nil
}

// Put stores (or replaces) the result for query.
func (s *GeocodeCacheStore) Put(loc *CachedLocation) error {
	loc.FetchedAt = time.Now()
	_, err := s.db.conn.Exec(
		`INSERT INTO geocode_cache (query, lat, lng, display_name, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET
			lat = excluded.lat, lng = excluded.lng,
			display_name = excluded.display_name, fetched_at = excluded.fetched_at`,
		loc.Query, loc.Lat, loc.Lng, loc.DisplayName, loc.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("write geocode cache: %w", err)
	}
	return nil
}

// PruneExpired deletes cache rows older than maxAge and reports how many
// were removed.
func (s *GeocodeCacheStore) PruneExpired(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	res, err := s.db.conn.Exec(`DELETE FROM geocode_cache WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune geocode cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

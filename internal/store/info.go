package store

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Info describes an open store: database file, schema version, declared
// collections, and the total record count across all of them.
type Info struct {
	Name        string   `json:"name"`
	Version     int      `json:"version"`
	Collections []string `json:"collections"`
	Records     int64    `json:"records"`
}

// Info returns store introspection data.
func (s *Store) Info() (*Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, types.ErrStoreClosed
	}

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return nil, fmt.Errorf("reading schema version: %w", err)
	}

	info := &Info{
		Name:        databaseFile,
		Version:     version,
		Collections: append([]string(nil), types.StandardCollections...),
	}
	for _, name := range types.StandardCollections {
		n, err := s.registry[name].countIn(s.db)
		if err != nil {
			return nil, err
		}
		info.Records += n
	}
	return info, nil
}

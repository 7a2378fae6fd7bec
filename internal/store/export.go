package store

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// collectionOps is the non-generic face each typed collection presents
// to store-level operations (export, import, clear, counting). The
// helpers run against a caller-supplied handle so imports can use a
// transaction; callers hold the store lock.
type collectionOps interface {
	collectionName() string
	clearIn(e execer) error
	countIn(e execer) (int64, error)
	exportIn(e execer) ([]json.RawMessage, error)
	importIn(e execer, records []json.RawMessage) error
}

func (c *Collection[T, K]) collectionName() string { return c.sch.Name }

// exportIn marshals every record in key order, rehydrated so the
// document carries its authoritative key.
func (c *Collection[T, K]) exportIn(e execer) ([]json.RawMessage, error) {
	query := fmt.Sprintf("SELECT %s, record FROM %s ORDER BY %s",
		c.keyColumn, c.sch.Name, c.keyColumn)
	recs, err := c.queryRecords(e, query)
	if err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, 0, len(recs))
	for _, rec := range recs {
		doc, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encoding %s record for export: %w", c.sch.Name, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// importIn replaces the collection contents with the given records,
// preserving their keys.
func (c *Collection[T, K]) importIn(e execer, records []json.RawMessage) error {
	if err := c.clearIn(e); err != nil {
		return err
	}
	for i, raw := range records {
		rec := new(T)
		if err := json.Unmarshal(raw, rec); err != nil {
			return fmt.Errorf("decoding %s record %d: %w", c.sch.Name, i, err)
		}
		if _, err := c.addIn(e, rec); err != nil {
			return fmt.Errorf("importing %s record %d: %w", c.sch.Name, i, err)
		}
	}
	return nil
}

// Export returns a full snapshot of every collection, suitable for
// backup as a single JSON object.
func (s *Store) Export() (types.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, types.ErrStoreClosed
	}

	snap := types.Snapshot{}
	for _, name := range types.StandardCollections {
		records, err := s.registry[name].exportIn(s.db)
		if err != nil {
			return nil, err
		}
		snap[name] = records
	}
	return snap, nil
}

// Import restores collections from a snapshot. Each declared collection
// present in the snapshot is cleared and repopulated inside its own
// transaction; collections absent from the snapshot are untouched, and
// snapshot keys that match no declared collection are ignored.
func (s *Store) Import(snap types.Snapshot) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return types.ErrStoreClosed
	}

	for _, name := range types.StandardCollections {
		records, ok := snap[name]
		if !ok {
			continue
		}
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning import of %s: %w", name, err)
		}
		if err := s.registry[name].importIn(tx, records); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing import of %s: %w", name, err)
		}
	}
	return nil
}

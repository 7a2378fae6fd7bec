package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// Key constrains collection primary keys: auto-assigned integers or
// natural string keys.
type Key interface {
	~int64 | ~string
}

// Schema describes how a record type maps onto its collection table.
// Columns lists the secondary-index column names in table order; Fields
// returns the current value for each of those columns. Date values may
// be returned as time.Time; the engine encodes them uniformly.
type Schema[T any, K Key] struct {
	Name    string
	Columns []string
	Key     func(*T) K
	SetKey  func(*T, K)
	Fields  func(*T) map[string]any
}

// execer abstracts *sql.DB and *sql.Tx so the same statement helpers
// serve both direct operations and batches.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Collection is the typed accessor for one collection. All operations
// require the store to be open and fail with types.ErrStoreClosed
// otherwise.
type Collection[T any, K Key] struct {
	st        *Store
	sch       Schema[T, K]
	auto      bool   // integer autoincrement primary key
	keyColumn string // "id" for auto keys, "key" for natural keys
}

func newCollection[T any, K Key](st *Store, sch Schema[T, K]) *Collection[T, K] {
	var zero K
	_, auto := any(zero).(int64)
	keyColumn := "key"
	if auto {
		keyColumn = "id"
	}
	return &Collection[T, K]{st: st, sch: sch, auto: auto, keyColumn: keyColumn}
}

// Name returns the collection name.
func (c *Collection[T, K]) Name() string { return c.sch.Name }

// Add inserts a new record and returns its key. For auto-key
// collections a zero key means "assign the next key"; a non-zero key is
// inserted as given. Uniqueness conflicts return types.ErrConstraint.
func (c *Collection[T, K]) Add(rec *T) (K, error) {
	var zero K
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return zero, types.ErrStoreClosed
	}
	return c.addIn(c.st.db, rec)
}

// Get returns the record with the given key, or nil when absent.
// Absence is not an error.
func (c *Collection[T, K]) Get(key K) (*T, error) {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return nil, types.ErrStoreClosed
	}
	return c.getIn(c.st.db, key)
}

// All returns up to limit records in key order; limit <= 0 means all.
func (c *Collection[T, K]) All(limit int) ([]*T, error) {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return nil, types.ErrStoreClosed
	}
	query := fmt.Sprintf("SELECT %s, record FROM %s ORDER BY %s",
		c.keyColumn, c.sch.Name, c.keyColumn)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	return c.queryRecords(c.st.db, query)
}

// Put upserts by primary key: insert when absent, replace the full
// record when present. A zero auto key behaves like Add.
func (c *Collection[T, K]) Put(rec *T) error {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return types.ErrStoreClosed
	}
	return c.putIn(c.st.db, rec)
}

// Delete removes the record with the given key. Deleting an absent key
// is a no-op success.
func (c *Collection[T, K]) Delete(key K) error {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return types.ErrStoreClosed
	}
	return c.deleteIn(c.st.db, key)
}

// ByIndex returns all records whose indexed field equals value.
func (c *Collection[T, K]) ByIndex(index string, value any) ([]*T, error) {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return nil, types.ErrStoreClosed
	}
	col, err := c.resolveColumn(index)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT %s, record FROM %s WHERE %s = ? ORDER BY %s",
		c.keyColumn, c.sch.Name, col, c.keyColumn)
	return c.queryRecords(c.st.db, query, encodeIndexValue(value))
}

// ByRange returns up to limit records whose indexed field falls within
// r, ordered by the indexed field; limit <= 0 means all. A range with
// no bounds returns types.ErrEmptyRange.
func (c *Collection[T, K]) ByRange(index string, r types.Range, limit int) ([]*T, error) {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return nil, types.ErrStoreClosed
	}
	if r.IsZero() {
		return nil, types.ErrEmptyRange
	}
	col, err := c.resolveColumn(index)
	if err != nil {
		return nil, err
	}
	conds, args := rangeConditions(col, r)
	query := fmt.Sprintf("SELECT %s, record FROM %s WHERE %s ORDER BY %s, %s",
		c.keyColumn, c.sch.Name, strings.Join(conds, " AND "), col, c.keyColumn)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	return c.queryRecords(c.st.db, query, args...)
}

// Count returns the number of records in the collection.
func (c *Collection[T, K]) Count() (int64, error) {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return 0, types.ErrStoreClosed
	}
	return c.countIn(c.st.db)
}

// CountRange returns the number of records whose indexed field falls
// within r. A range with no bounds counts the whole collection.
func (c *Collection[T, K]) CountRange(index string, r types.Range) (int64, error) {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return 0, types.ErrStoreClosed
	}
	if r.IsZero() {
		return c.countIn(c.st.db)
	}
	col, err := c.resolveColumn(index)
	if err != nil {
		return 0, err
	}
	conds, args := rangeConditions(col, r)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s",
		c.sch.Name, strings.Join(conds, " AND "))
	var n int64
	if err := c.st.db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s by %s: %w", c.sch.Name, col, err)
	}
	return n, nil
}

// Clear removes every record in the collection.
func (c *Collection[T, K]) Clear() error {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return types.ErrStoreClosed
	}
	return c.clearIn(c.st.db)
}

// Statement helpers. These run against either the database handle or a
// batch transaction; callers hold the store lock and have checked ready.

func (c *Collection[T, K]) addIn(e execer, rec *T) (K, error) {
	var zero K
	if rec == nil {
		return zero, types.ErrInvalidRecord
	}
	key := c.sch.Key(rec)

	if c.auto && key == zero {
		doc, err := json.Marshal(rec)
		if err != nil {
			return zero, fmt.Errorf("encoding %s record: %w", c.sch.Name, err)
		}
		cols, args := c.fieldArgs(rec)
		query := fmt.Sprintf("INSERT INTO %s (record%s) VALUES (?%s)",
			c.sch.Name, cols, strings.Repeat(", ?", len(args)))
		res, err := e.Exec(query, append([]any{string(doc)}, args...)...)
		if err != nil {
			return zero, fmt.Errorf("inserting into %s: %w", c.sch.Name, wrapConstraint(err))
		}
		id, err := res.LastInsertId()
		if err != nil {
			return zero, fmt.Errorf("reading generated key for %s: %w", c.sch.Name, err)
		}
		key = any(id).(K) // auto collections always instantiate K as int64
		c.sch.SetKey(rec, key)
		return key, nil
	}

	if !c.auto && key == zero {
		return zero, fmt.Errorf("%w: empty key for %s", types.ErrInvalidKey, c.sch.Name)
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("encoding %s record: %w", c.sch.Name, err)
	}
	cols, args := c.fieldArgs(rec)
	query := fmt.Sprintf("INSERT INTO %s (%s, record%s) VALUES (?, ?%s)",
		c.sch.Name, c.keyColumn, cols, strings.Repeat(", ?", len(args)))
	if _, err := e.Exec(query, append([]any{key, string(doc)}, args...)...); err != nil {
		return zero, fmt.Errorf("inserting into %s: %w", c.sch.Name, wrapConstraint(err))
	}
	return key, nil
}

func (c *Collection[T, K]) getIn(e execer, key K) (*T, error) {
	query := fmt.Sprintf("SELECT %s, record FROM %s WHERE %s = ?",
		c.keyColumn, c.sch.Name, c.keyColumn)
	var scanned K
	var doc string
	err := e.QueryRow(query, key).Scan(&scanned, &doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.sch.Name, err)
	}
	return c.decode(scanned, doc)
}

func (c *Collection[T, K]) putIn(e execer, rec *T) error {
	if rec == nil {
		return types.ErrInvalidRecord
	}
	var zero K
	key := c.sch.Key(rec)
	if key == zero {
		_, err := c.addIn(e, rec)
		return err
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding %s record: %w", c.sch.Name, err)
	}
	cols, args := c.fieldArgs(rec)

	var updates []string
	updates = append(updates, "record = excluded.record")
	for _, col := range c.sch.Columns {
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", col, col))
	}
	query := fmt.Sprintf("INSERT INTO %s (%s, record%s) VALUES (?, ?%s) ON CONFLICT(%s) DO UPDATE SET %s",
		c.sch.Name, c.keyColumn, cols, strings.Repeat(", ?", len(args)),
		c.keyColumn, strings.Join(updates, ", "))
	if _, err := e.Exec(query, append([]any{key, string(doc)}, args...)...); err != nil {
		return fmt.Errorf("upserting %s: %w", c.sch.Name, wrapConstraint(err))
	}
	return nil
}

func (c *Collection[T, K]) deleteIn(e execer, key K) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", c.sch.Name, c.keyColumn)
	if _, err := e.Exec(query, key); err != nil {
		return fmt.Errorf("deleting from %s: %w", c.sch.Name, err)
	}
	return nil
}

func (c *Collection[T, K]) countIn(e execer) (int64, error) {
	var n int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.sch.Name)
	if err := e.QueryRow(query).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", c.sch.Name, err)
	}
	return n, nil
}

func (c *Collection[T, K]) clearIn(e execer) error {
	if _, err := e.Exec(fmt.Sprintf("DELETE FROM %s", c.sch.Name)); err != nil {
		return fmt.Errorf("clearing %s: %w", c.sch.Name, err)
	}
	return nil
}

func (c *Collection[T, K]) queryRecords(e execer, query string, args ...any) ([]*T, error) {
	rows, err := e.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", c.sch.Name, err)
	}
	defer rows.Close()

	results := []*T{}
	for rows.Next() {
		var key K
		var doc string
		if err := rows.Scan(&key, &doc); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", c.sch.Name, err)
		}
		rec, err := c.decode(key, doc)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// decode unmarshals a stored document and rehydrates its key from the
// key column, which is authoritative for auto-assigned keys.
func (c *Collection[T, K]) decode(key K, doc string) (*T, error) {
	rec := new(T)
	if err := json.Unmarshal([]byte(doc), rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", c.sch.Name, err)
	}
	if c.sch.SetKey != nil {
		c.sch.SetKey(rec, key)
	}
	return rec, nil
}

// fieldArgs returns the indexed-column fragment for INSERT statements
// (", col1, col2") and the encoded values in schema column order.
func (c *Collection[T, K]) fieldArgs(rec *T) (string, []any) {
	if len(c.sch.Columns) == 0 {
		return "", nil
	}
	fields := c.sch.Fields(rec)
	args := make([]any, 0, len(c.sch.Columns))
	for _, col := range c.sch.Columns {
		args = append(args, encodeIndexValue(fields[col]))
	}
	return ", " + strings.Join(c.sch.Columns, ", "), args
}

// resolveColumn validates an index name against the schema. The primary
// key column is addressable as an index too.
func (c *Collection[T, K]) resolveColumn(index string) (string, error) {
	if index == c.keyColumn {
		return index, nil
	}
	for _, col := range c.sch.Columns {
		if col == index {
			return col, nil
		}
	}
	return "", fmt.Errorf("%w: %s.%s", types.ErrUnknownIndex, c.sch.Name, index)
}

// rangeConditions builds the WHERE fragment for a four-way range.
func rangeConditions(col string, r types.Range) ([]string, []any) {
	var conds []string
	var args []any
	if r.Lower != nil {
		op := ">="
		if r.LowerOpen {
			op = ">"
		}
		conds = append(conds, fmt.Sprintf("%s %s ?", col, op))
		args = append(args, encodeIndexValue(r.Lower))
	}
	if r.Upper != nil {
		op := "<="
		if r.UpperOpen {
			op = "<"
		}
		conds = append(conds, fmt.Sprintf("%s %s ?", col, op))
		args = append(args, encodeIndexValue(r.Upper))
	}
	return conds, args
}

// encodeIndexValue normalizes index values for storage and comparison.
// Times become fixed-width UTC RFC 3339 strings so lexicographic order
// matches chronological order at second precision.
func encodeIndexValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(time.RFC3339)
	default:
		return v
	}
}

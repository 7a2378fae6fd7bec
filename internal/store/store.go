package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	sqlite "modernc.org/sqlite"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// databaseFile is the SQLite file name inside the data directory.
const databaseFile = "larder.db"

// sqliteConstraintPrimary is the SQLite primary result code for
// constraint violations (SQLITE_CONSTRAINT). Extended codes carry the
// primary code in their low byte.
const sqliteConstraintPrimary = 19

// Store provides typed collection accessors over one SQLite database.
// Lifecycle: New → Open → operations → Close. Open is idempotent and
// reopening an existing data directory preserves its data. After Close,
// every operation returns types.ErrStoreClosed until the next Open.
type Store struct {
	mu      sync.RWMutex
	ready   bool
	dataDir string
	db      *sql.DB

	customers *Collection[types.Customer, int64]
	tasks     *Collection[types.Task, int64]
	products  *Collection[types.Product, int64]
	orders    *Collection[types.Order, int64]
	users     *Collection[types.User, int64]
	settings  *Collection[types.SystemSetting, string]
	logs      *Collection[types.LogEntry, int64]
	cache     *Collection[types.CacheEntry, string]

	registry map[string]collectionOps
}

// New creates an unopened store with all collection accessors wired.
func New() *Store {
	s := &Store{}
	s.customers = newCustomersCollection(s)
	s.tasks = newTasksCollection(s)
	s.products = newProductsCollection(s)
	s.orders = newOrdersCollection(s)
	s.users = newUsersCollection(s)
	s.settings = newSettingsCollection(s)
	s.logs = newLogsCollection(s)
	s.cache = newCacheCollection(s)

	s.registry = map[string]collectionOps{
		types.CustomersCollection: s.customers,
		types.TasksCollection:     s.tasks,
		types.ProductsCollection:  s.products,
		types.OrdersCollection:    s.orders,
		types.UsersCollection:     s.users,
		types.SettingsCollection:  s.settings,
		types.LogsCollection:      s.logs,
		types.CacheCollection:     s.cache,
	}
	return s
}

// Open initializes the store: creates the data directory if needed,
// opens the database, and applies the schema. Calling Open on an
// already-open store is a no-op success.
func (s *Store) Open(cfg types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, databaseFile))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying indexes: %w", err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		db.Close()
		return fmt.Errorf("setting schema version: %w", err)
	}

	s.db = db
	s.dataDir = cfg.DataDir
	s.ready = true
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	s.ready = false
	return nil
}

// Typed collection accessors.

func (s *Store) Customers() *Collection[types.Customer, int64]       { return s.customers }
func (s *Store) Tasks() *Collection[types.Task, int64]               { return s.tasks }
func (s *Store) Products() *Collection[types.Product, int64]         { return s.products }
func (s *Store) Orders() *Collection[types.Order, int64]             { return s.orders }
func (s *Store) Users() *Collection[types.User, int64]               { return s.users }
func (s *Store) Settings() *Collection[types.SystemSetting, string]  { return s.settings }
func (s *Store) Logs() *Collection[types.LogEntry, int64]            { return s.logs }
func (s *Store) Cache() *Collection[types.CacheEntry, string]        { return s.cache }

// Collections returns the declared collection names in dependency order.
func (s *Store) Collections() []string {
	return append([]string(nil), types.StandardCollections...)
}

// ClearCollection removes every record in the named collection. The
// collection definition itself persists.
func (s *Store) ClearCollection(name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return types.ErrStoreClosed
	}
	ops, ok := s.registry[name]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrUnknownCollection, name)
	}
	return ops.clearIn(s.db)
}

// wrapConstraint tags engine constraint failures with types.ErrConstraint
// so callers can match them with errors.Is.
func wrapConstraint(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqliteConstraintPrimary {
		return fmt.Errorf("%w: %v", types.ErrConstraint, err)
	}
	return err
}

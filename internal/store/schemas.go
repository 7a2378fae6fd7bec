package store

import "github.com/mesh-intelligence/larder/pkg/types"

// Collection schemas. Columns must match the DDL in schema.go; Fields
// supplies the extracted value for each declared index column.

func newCustomersCollection(st *Store) *Collection[types.Customer, int64] {
	return newCollection(st, Schema[types.Customer, int64]{
		Name:    types.CustomersCollection,
		Columns: []string{"email", "status", "create_date"},
		Key:     func(c *types.Customer) int64 { return c.ID },
		SetKey:  func(c *types.Customer, k int64) { c.ID = k },
		Fields: func(c *types.Customer) map[string]any {
			return map[string]any{
				"email":       c.Email,
				"status":      c.Status,
				"create_date": c.CreateDate,
			}
		},
	})
}

func newTasksCollection(st *Store) *Collection[types.Task, int64] {
	return newCollection(st, Schema[types.Task, int64]{
		Name:    types.TasksCollection,
		Columns: []string{"status", "assignee", "due_date", "create_date"},
		Key:     func(t *types.Task) int64 { return t.ID },
		SetKey:  func(t *types.Task, k int64) { t.ID = k },
		Fields: func(t *types.Task) map[string]any {
			return map[string]any{
				"status":      t.Status,
				"assignee":    t.Assignee,
				"due_date":    t.DueDate,
				"create_date": t.CreateDate,
			}
		},
	})
}

func newProductsCollection(st *Store) *Collection[types.Product, int64] {
	return newCollection(st, Schema[types.Product, int64]{
		Name:    types.ProductsCollection,
		Columns: []string{"sku", "category", "create_date"},
		Key:     func(p *types.Product) int64 { return p.ID },
		SetKey:  func(p *types.Product, k int64) { p.ID = k },
		Fields: func(p *types.Product) map[string]any {
			return map[string]any{
				"sku":         p.SKU,
				"category":    p.Category,
				"create_date": p.CreateDate,
			}
		},
	})
}

func newOrdersCollection(st *Store) *Collection[types.Order, int64] {
	return newCollection(st, Schema[types.Order, int64]{
		Name:    types.OrdersCollection,
		Columns: []string{"order_number", "customer_id", "status", "order_date"},
		Key:     func(o *types.Order) int64 { return o.ID },
		SetKey:  func(o *types.Order, k int64) { o.ID = k },
		Fields: func(o *types.Order) map[string]any {
			return map[string]any{
				"order_number": o.OrderNumber,
				"customer_id":  o.CustomerID,
				"status":       o.Status,
				"order_date":   o.OrderDate,
			}
		},
	})
}

func newUsersCollection(st *Store) *Collection[types.User, int64] {
	return newCollection(st, Schema[types.User, int64]{
		Name:    types.UsersCollection,
		Columns: []string{"username", "email", "role"},
		Key:     func(u *types.User) int64 { return u.ID },
		SetKey:  func(u *types.User, k int64) { u.ID = k },
		Fields: func(u *types.User) map[string]any {
			return map[string]any{
				"username": u.Username,
				"email":    u.Email,
				"role":     u.Role,
			}
		},
	})
}

func newSettingsCollection(st *Store) *Collection[types.SystemSetting, string] {
	return newCollection(st, Schema[types.SystemSetting, string]{
		Name:    types.SettingsCollection,
		Columns: []string{"category"},
		Key:     func(s *types.SystemSetting) string { return s.Key },
		SetKey:  func(s *types.SystemSetting, k string) { s.Key = k },
		Fields: func(s *types.SystemSetting) map[string]any {
			return map[string]any{"category": s.Category}
		},
	})
}

func newLogsCollection(st *Store) *Collection[types.LogEntry, int64] {
	return newCollection(st, Schema[types.LogEntry, int64]{
		Name:    types.LogsCollection,
		Columns: []string{"level", "module", "timestamp", "user_id"},
		Key:     func(l *types.LogEntry) int64 { return l.ID },
		SetKey:  func(l *types.LogEntry, k int64) { l.ID = k },
		Fields: func(l *types.LogEntry) map[string]any {
			return map[string]any{
				"level":     l.Level,
				"module":    l.Module,
				"timestamp": l.Timestamp,
				"user_id":   l.UserID,
			}
		},
	})
}

func newCacheCollection(st *Store) *Collection[types.CacheEntry, string] {
	return newCollection(st, Schema[types.CacheEntry, string]{
		Name:    types.CacheCollection,
		Columns: []string{"category", "expiry"},
		Key:     func(c *types.CacheEntry) string { return c.Key },
		SetKey:  func(c *types.CacheEntry, k string) { c.Key = k },
		Fields: func(c *types.CacheEntry) map[string]any {
			return map[string]any{
				"category": c.Category,
				"expiry":   c.Expiry,
			}
		},
	})
}

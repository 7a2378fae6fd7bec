// Package store implements the embedded key-indexed record store over
// SQLite. Each collection table holds the record as a JSON document plus
// extracted columns for its secondary indexes.
package store

// schemaVersion is written to PRAGMA user_version on first open.
const schemaVersion = 1

// Table DDL. All statements are IF NOT EXISTS so that Open is idempotent
// and reopening an existing data directory preserves data.
const (
	createCustomers = `CREATE TABLE IF NOT EXISTS customers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    record TEXT NOT NULL,
    email TEXT,
    status TEXT,
    create_date TEXT
);`

	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    record TEXT NOT NULL,
    status TEXT,
    assignee TEXT,
    due_date TEXT,
    create_date TEXT
);`

	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    record TEXT NOT NULL,
    sku TEXT,
    category TEXT,
    create_date TEXT
);`

	createOrders = `CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    record TEXT NOT NULL,
    order_number TEXT,
    customer_id INTEGER,
    status TEXT,
    order_date TEXT
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    record TEXT NOT NULL,
    username TEXT,
    email TEXT,
    role TEXT
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    record TEXT NOT NULL,
    category TEXT
);`

	createLogs = `CREATE TABLE IF NOT EXISTS logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    record TEXT NOT NULL,
    level TEXT,
    module TEXT,
    timestamp TEXT,
    user_id INTEGER
);`

	createCache = `CREATE TABLE IF NOT EXISTS cache (
    key TEXT PRIMARY KEY,
    record TEXT NOT NULL,
    category TEXT,
    expiry TEXT
);`
)

// Index DDL. Unique indexes enforce the uniqueness invariants (customer
// email, user username/email, product SKU, order number).
const (
	idxCustomersEmail  = `CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email ON customers(email);`
	idxCustomersStatus = `CREATE INDEX IF NOT EXISTS idx_customers_status ON customers(status);`
	idxCustomersCreate = `CREATE INDEX IF NOT EXISTS idx_customers_create_date ON customers(create_date);`

	idxTasksStatus   = `CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`
	idxTasksAssignee = `CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee);`
	idxTasksDueDate  = `CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date);`
	idxTasksCreate   = `CREATE INDEX IF NOT EXISTS idx_tasks_create_date ON tasks(create_date);`

	idxProductsSKU      = `CREATE UNIQUE INDEX IF NOT EXISTS idx_products_sku ON products(sku);`
	idxProductsCategory = `CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);`
	idxProductsCreate   = `CREATE INDEX IF NOT EXISTS idx_products_create_date ON products(create_date);`

	idxOrdersNumber   = `CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_number ON orders(order_number);`
	idxOrdersCustomer = `CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);`
	idxOrdersStatus   = `CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);`
	idxOrdersDate     = `CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date);`

	idxUsersUsername = `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);`
	idxUsersEmail    = `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);`
	idxUsersRole     = `CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);`

	idxSettingsCategory = `CREATE INDEX IF NOT EXISTS idx_settings_category ON settings(category);`

	idxLogsLevel     = `CREATE INDEX IF NOT EXISTS idx_logs_level ON logs(level);`
	idxLogsModule    = `CREATE INDEX IF NOT EXISTS idx_logs_module ON logs(module);`
	idxLogsTimestamp = `CREATE INDEX IF NOT EXISTS idx_logs_timestamp ON logs(timestamp);`
	idxLogsUser      = `CREATE INDEX IF NOT EXISTS idx_logs_user ON logs(user_id);`

	idxCacheCategory = `CREATE INDEX IF NOT EXISTS idx_cache_category ON cache(category);`
	idxCacheExpiry   = `CREATE INDEX IF NOT EXISTS idx_cache_expiry ON cache(expiry);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createCustomers,
	createTasks,
	createProducts,
	createOrders,
	createUsers,
	createSettings,
	createLogs,
	createCache,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCustomersEmail,
	idxCustomersStatus,
	idxCustomersCreate,
	idxTasksStatus,
	idxTasksAssignee,
	idxTasksDueDate,
	idxTasksCreate,
	idxProductsSKU,
	idxProductsCategory,
	idxProductsCreate,
	idxOrdersNumber,
	idxOrdersCustomer,
	idxOrdersStatus,
	idxOrdersDate,
	idxUsersUsername,
	idxUsersEmail,
	idxUsersRole,
	idxSettingsCategory,
	idxLogsLevel,
	idxLogsModule,
	idxLogsTimestamp,
	idxLogsUser,
	idxCacheCategory,
	idxCacheExpiry,
}

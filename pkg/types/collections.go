package types

// Standard collection names.
const (
	CustomersCollection = "customers"
	TasksCollection     = "tasks"
	ProductsCollection  = "products"
	OrdersCollection    = "orders"
	UsersCollection     = "users"
	SettingsCollection  = "settings"
	LogsCollection      = "logs"
	CacheCollection     = "cache"
)

// StandardCollections lists all declared collection names in seeding
// dependency order: orders reference customers and products, tasks
// reference users, logs reference users.
var StandardCollections = []string{
	SettingsCollection,
	UsersCollection,
	CustomersCollection,
	ProductsCollection,
	OrdersCollection,
	TasksCollection,
	LogsCollection,
	CacheCollection,
}

// Package seed populates a store with a coherent synthetic dataset and
// derives read-only business projections from existing data.
package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/internal/store"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// SeedVersion is recorded in the settings collection once a full
// seeding pass completes. Its presence makes SeedAll a no-op, so the
// "already seeded" signal survives process restarts.
const SeedVersion = 1

// seedMarkerKey is the settings key holding SeedVersion.
const seedMarkerKey = "seed_version"

// Record counts per seeding pass.
const (
	userCount     = 12
	customerCount = 50
	productCount  = 30
	orderCount    = 100
	taskCount     = 80
	logCount      = 200
)

// Seeder writes demo data into an open store. Generation is driven by a
// deterministic source so repeated passes over a fresh store produce
// the same dataset.
type Seeder struct {
	st  *store.Store
	log *zap.SugaredLogger
	rng *rand.Rand
	now time.Time
}

// New creates a Seeder over an open store. The logger is used for
// developer diagnostics only; pass zap.NewNop().Sugar() to silence it.
func New(st *store.Store, log *zap.SugaredLogger) *Seeder {
	return &Seeder{
		st:  st,
		log: log,
		rng: rand.New(rand.NewPCG(0x1a4d, 0x5eed)),
		now: time.Now().UTC().Truncate(time.Second),
	}
}

// CheckSeeded reports whether the store already holds data, using the
// customers collection as the signal.
func (s *Seeder) CheckSeeded() (bool, error) {
	n, err := s.st.Customers().Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SeedAll populates every collection in dependency order: settings,
// users, customers, products, orders, tasks, logs. It is a no-op when
// the seed marker setting is present. A failed pass may leave some
// collections populated; callers should ClearAll before retrying.
func (s *Seeder) SeedAll() error {
	marker, err := s.st.Settings().Get(seedMarkerKey)
	if err != nil {
		return err
	}
	if marker != nil {
		s.log.Debugw("seed marker present, skipping", "key", seedMarkerKey)
		return nil
	}

	s.log.Infow("seeding store")

	if err := s.seedSettings(); err != nil {
		return fmt.Errorf("seeding settings: %w", err)
	}
	users, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	customers, err := s.seedCustomers()
	if err != nil {
		return fmt.Errorf("seeding customers: %w", err)
	}
	products, err := s.seedProducts()
	if err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}
	if err := s.seedOrders(customers, products); err != nil {
		return fmt.Errorf("seeding orders: %w", err)
	}
	if err := s.seedTasks(users); err != nil {
		return fmt.Errorf("seeding tasks: %w", err)
	}
	if err := s.seedLogs(users); err != nil {
		return fmt.Errorf("seeding logs: %w", err)
	}

	if err := s.st.Settings().Put(&types.SystemSetting{
		Key:         seedMarkerKey,
		Value:       SeedVersion,
		Category:    "system",
		Description: "Demo data seed version; presence means seeding ran",
		Type:        types.SettingNumber,
		UpdateDate:  s.now,
	}); err != nil {
		return fmt.Errorf("writing seed marker: %w", err)
	}

	s.log.Infow("seeding complete",
		"users", userCount, "customers", customerCount,
		"products", productCount, "orders", orderCount,
		"tasks", taskCount, "logs", logCount)
	return nil
}

// ClearAll empties every collection, including the seed marker.
func (s *Seeder) ClearAll() error {
	for _, name := range s.st.Collections() {
		if err := s.st.ClearCollection(name); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	s.log.Debugw("all collections cleared")
	return nil
}

// Reseed wipes and regenerates every collection.
func (s *Seeder) Reseed() error {
	if err := s.ClearAll(); err != nil {
		return err
	}
	return s.SeedAll()
}

// Stats returns per-collection record counts.
func (s *Seeder) Stats() (map[string]int64, error) {
	stats := make(map[string]int64)
	counters := map[string]func() (int64, error){
		types.CustomersCollection: s.st.Customers().Count,
		types.TasksCollection:     s.st.Tasks().Count,
		types.ProductsCollection:  s.st.Products().Count,
		types.OrdersCollection:    s.st.Orders().Count,
		types.UsersCollection:     s.st.Users().Count,
		types.SettingsCollection:  s.st.Settings().Count,
		types.LogsCollection:      s.st.Logs().Count,
		types.CacheCollection:     s.st.Cache().Count,
	}
	for name, count := range counters {
		n, err := count()
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", name, err)
		}
		stats[name] = n
	}
	return stats, nil
}

func (s *Seeder) seedSettings() error {
	settings := []types.SystemSetting{
		{Key: "site_name", Value: "Larder Admin", Category: "general", Description: "Display name", Type: types.SettingString},
		{Key: "currency", Value: "USD", Category: "general", Description: "Reporting currency", Type: types.SettingString},
		{Key: "items_per_page", Value: 20, Category: "display", Description: "Default page size", Type: types.SettingNumber},
		{Key: "session_timeout_minutes", Value: 30, Category: "security", Description: "Idle session timeout", Type: types.SettingNumber},
		{Key: "maintenance_mode", Value: false, Category: "system", Description: "Maintenance banner toggle", Type: types.SettingBoolean},
		{Key: "notification_defaults", Value: map[string]any{"email": true, "desktop": false}, Category: "notifications", Description: "Default notification channels", Type: types.SettingObject},
	}
	for i := range settings {
		settings[i].UpdateDate = s.now
		if _, err := s.st.Settings().Add(&settings[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedUsers() ([]*types.User, error) {
	users := make([]*types.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		first := firstNames[i]
		last := lastNames[i]
		var role string
		switch i {
		case 0:
			role = types.RoleAdmin
		case 1:
			role = types.RoleManager
		default:
			role = pick(s.rng, []string{
				types.RoleManager, types.RoleEmployee,
				types.RoleEmployee, types.RoleViewer,
			})
		}
		u := &types.User{
			Username:    strings.ToLower(first[:1] + last),
			Email:       fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), emailDomains[0]),
			Password:    "demo-password",
			Role:        role,
			Department:  pick(s.rng, departments),
			Permissions: append([]string(nil), rolePermissions[role]...),
			CreateDate:  s.pastDate(365),
			IsActive:    s.rng.IntN(10) > 0,
		}
		if s.rng.IntN(3) > 0 {
			u.RecordLogin(s.pastDate(14))
		}
		if _, err := s.st.Users().Add(u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) seedCustomers() ([]*types.Customer, error) {
	statuses := []string{
		types.CustomerActive, types.CustomerActive, types.CustomerActive,
		types.CustomerInactive, types.CustomerPotential,
	}
	customers := make([]*types.Customer, 0, customerCount)
	for i := 0; i < customerCount; i++ {
		first := pick(s.rng, firstNames)
		last := pick(s.rng, lastNames)
		c := &types.Customer{
			Name:       first + " " + last,
			Email:      fmt.Sprintf("%s.%s.%d@%s", strings.ToLower(first), strings.ToLower(last), i, pick(s.rng, emailDomains)),
			Phone:      fmt.Sprintf("+1-555-%04d", 1000+s.rng.IntN(9000)),
			Company:    pick(s.rng, companies),
			Status:     pick(s.rng, statuses),
			CreateDate: s.pastDate(365),
		}
		if s.rng.IntN(2) == 0 {
			c.Touch(s.pastDate(30))
		}
		if _, err := s.st.Customers().Add(c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (s *Seeder) seedProducts() ([]*types.Product, error) {
	products := make([]*types.Product, 0, productCount)
	for i := 0; i < productCount; i++ {
		adj := productAdjectives[i%len(productAdjectives)]
		noun := productNouns[(i/len(productAdjectives))%len(productNouns)]
		category := pick(s.rng, productCategories)
		p := &types.Product{
			Name:        fmt.Sprintf("%s %s %d", adj, noun, 100+i),
			Description: fmt.Sprintf("%s-grade %s for daily office use", adj, strings.ToLower(noun)),
			Category:    category,
			Price:       roundCents(5 + s.rng.Float64()*495),
			Stock:       s.rng.IntN(500),
			SKU:         fmt.Sprintf("SKU-%s-%03d", strings.ToUpper(category[:3]), i+1),
			Images:      []string{fmt.Sprintf("/images/products/%03d.png", i+1)},
			Specifications: map[string]string{
				"weight":   fmt.Sprintf("%.1fkg", 0.2+s.rng.Float64()*9),
				"warranty": fmt.Sprintf("%d months", 12*(1+s.rng.IntN(3))),
			},
			CreateDate: s.pastDate(365),
		}
		p.UpdateDate = p.CreateDate
		if _, err := s.st.Products().Add(p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *Seeder) seedOrders(customers []*types.Customer, products []*types.Product) error {
	statuses := []string{
		types.OrderPending, types.OrderConfirmed, types.OrderShipped,
		types.OrderDelivered, types.OrderDelivered, types.OrderCancelled,
	}
	for i := 0; i < orderCount; i++ {
		customer := pick(s.rng, customers)
		itemCount := 1 + s.rng.IntN(4)
		items := make([]types.OrderItem, 0, itemCount)
		for j := 0; j < itemCount; j++ {
			product := pick(s.rng, products)
			items = append(items, types.OrderItem{
				ProductID: product.ID,
				Quantity:  1 + s.rng.IntN(5),
				UnitPrice: product.Price,
			})
		}
		o := &types.Order{
			CustomerID:      customer.ID,
			OrderNumber:     fmt.Sprintf("ORD-%04d-%s", i+1, shortID()),
			Status:          pick(s.rng, statuses),
			OrderDate:       s.pastDate(180),
			Items:           items,
			ShippingAddress: fmt.Sprintf("%s, %s", pick(s.rng, streets), pick(s.rng, cities)),
		}
		o.RecalculateTotals()
		if _, err := s.st.Orders().Add(o); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedTasks(users []*types.User) error {
	statuses := []string{
		types.TaskTodo, types.TaskTodo, types.TaskInProgress,
		types.TaskCompleted, types.TaskCompleted, types.TaskCancelled,
	}
	priorities := []string{
		types.PriorityLow, types.PriorityMedium, types.PriorityMedium,
		types.PriorityHigh, types.PriorityUrgent,
	}
	for i := 0; i < taskCount; i++ {
		created := s.pastDate(120)
		t := &types.Task{
			Title:          fmt.Sprintf("%s %s", pick(s.rng, taskVerbs), pick(s.rng, taskSubjects)),
			Description:    "Seeded demo task",
			Status:         pick(s.rng, statuses),
			Priority:       pick(s.rng, priorities),
			Assignee:       pick(s.rng, users).Username,
			DueDate:        created.AddDate(0, 0, 3+s.rng.IntN(28)),
			CreateDate:     created,
			Tags:           pickN(s.rng, taskTags, 1+s.rng.IntN(3)),
			EstimatedHours: float64(1 + s.rng.IntN(16)),
		}
		if t.Status == types.TaskCompleted {
			t.Complete(created.AddDate(0, 0, 1+s.rng.IntN(20)))
			t.ActualHours = roundCents(t.EstimatedHours * (0.5 + s.rng.Float64()))
		}
		if _, err := s.st.Tasks().Add(t); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedLogs(users []*types.User) error {
	levels := []string{
		types.LevelDebug, types.LevelInfo, types.LevelInfo, types.LevelInfo,
		types.LevelWarn, types.LevelError,
	}
	for i := 0; i < logCount; i++ {
		l := &types.LogEntry{
			Level:     pick(s.rng, levels),
			Message:   pick(s.rng, logMessages),
			Module:    pick(s.rng, logModules),
			Timestamp: s.pastDate(30),
		}
		if s.rng.IntN(4) > 0 {
			l.UserID = pick(s.rng, users).ID
		}
		if s.rng.IntN(3) == 0 {
			l.Metadata = map[string]any{"requestId": shortID()}
		}
		if _, err := s.st.Logs().Add(l); err != nil {
			return err
		}
	}
	return nil
}

// pastDate returns a second-precision time up to maxDays in the past.
func (s *Seeder) pastDate(maxDays int) time.Time {
	days := s.rng.IntN(maxDays)
	secs := s.rng.IntN(24 * 60 * 60)
	return s.now.AddDate(0, 0, -days).Add(-time.Duration(secs) * time.Second)
}

// shortID returns a compact random identifier segment.
func shortID() string {
	id := uuid.New().String()
	return strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// pickN returns n distinct items, or all of them when n exceeds the
// vocabulary size.
func pickN[T any](rng *rand.Rand, items []T, n int) []T {
	idx := rng.Perm(len(items))
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for _, i := range idx[:n] {
		out = append(out, items[i])
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/internal/store"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// newSeededStore opens a fresh store and runs one full seeding pass.
func newSeededStore(t *testing.T) (*store.Store, *Seeder) {
	t.Helper()
	st := store.New()
	require.NoError(t, st.Open(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { st.Close() })

	s := New(st, zap.NewNop().Sugar())
	require.NoError(t, s.SeedAll())
	return st, s
}

func TestSeedAllPopulatesExpectedCounts(t *testing.T) {
	_, s := newSeededStore(t)

	stats, err := s.Stats()
	require.NoError(t, err)

	counts := map[string]int64{
		types.UsersCollection:     userCount,
		types.CustomersCollection: customerCount,
		types.ProductsCollection:  productCount,
		types.OrdersCollection:    orderCount,
		types.TasksCollection:     taskCount,
		types.LogsCollection:      logCount,
	}
	for name, want := range counts {
		assert.Equal(t, want, stats[name], name)
	}
	// Six seeded settings plus the marker.
	assert.Equal(t, int64(7), stats[types.SettingsCollection])
}

func TestSeedAllIsIdempotent(t *testing.T) {
	st, s := newSeededStore(t)

	before, err := st.Customers().Count()
	require.NoError(t, err)

	// The persisted marker makes a second pass a no-op.
	require.NoError(t, s.SeedAll())
	after, err := st.Customers().Count()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSeedMarkerPersists(t *testing.T) {
	st, _ := newSeededStore(t)

	marker, err := st.Settings().Get("seed_version")
	require.NoError(t, err)
	require.NotNil(t, marker)
	assert.Equal(t, "system", marker.Category)
}

func TestCheckSeeded(t *testing.T) {
	st := store.New()
	require.NoError(t, st.Open(types.Config{DataDir: t.TempDir()}))
	defer st.Close()

	s := New(st, zap.NewNop().Sugar())
	seeded, err := s.CheckSeeded()
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, s.SeedAll())
	seeded, err = s.CheckSeeded()
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestSeededRecordsValidate(t *testing.T) {
	st, _ := newSeededStore(t)

	customers, err := st.Customers().All(0)
	require.NoError(t, err)
	for _, c := range customers {
		assert.NoError(t, c.Validate(), "customer %d", c.ID)
	}

	users, err := st.Users().All(0)
	require.NoError(t, err)
	for _, u := range users {
		assert.NoError(t, u.Validate(), "user %d", u.ID)
	}

	tasks, err := st.Tasks().All(0)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NoError(t, task.Validate(), "task %d", task.ID)
	}

	orders, err := st.Orders().All(0)
	require.NoError(t, err)
	for _, o := range orders {
		assert.NoError(t, o.Validate(), "order %d", o.ID)
	}
}

func TestSeededOrdersReferenceRealRecords(t *testing.T) {
	st, _ := newSeededStore(t)

	orders, err := st.Orders().All(0)
	require.NoError(t, err)
	require.Len(t, orders, orderCount)

	for _, o := range orders {
		customer, err := st.Customers().Get(o.CustomerID)
		require.NoError(t, err)
		assert.NotNil(t, customer, "order %s references missing customer %d", o.OrderNumber, o.CustomerID)

		require.NotEmpty(t, o.Items)
		var total float64
		for _, item := range o.Items {
			product, err := st.Products().Get(item.ProductID)
			require.NoError(t, err)
			assert.NotNil(t, product, "order %s references missing product %d", o.OrderNumber, item.ProductID)
			total += item.TotalPrice
		}
		assert.InDelta(t, total, o.TotalAmount, 1e-9)
	}
}

func TestSeededTasksReferenceRealUsers(t *testing.T) {
	st, _ := newSeededStore(t)

	users, err := st.Users().All(0)
	require.NoError(t, err)
	usernames := make(map[string]bool, len(users))
	for _, u := range users {
		usernames[u.Username] = true
	}

	tasks, err := st.Tasks().All(0)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.True(t, usernames[task.Assignee], "task %d assigned to unknown user %q", task.ID, task.Assignee)
		if task.Status == types.TaskCompleted {
			assert.NotNil(t, task.CompletedDate)
		} else {
			assert.Nil(t, task.CompletedDate)
		}
	}
}

func TestSeededUsersHaveRequiredRoles(t *testing.T) {
	st, _ := newSeededStore(t)

	admins, err := st.Users().ByIndex("role", types.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, admins, "dataset must include at least one admin")

	managers, err := st.Users().ByIndex("role", types.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, managers, "dataset must include at least one manager")
}

func TestClearAllEmptiesEveryCollection(t *testing.T) {
	st, s := newSeededStore(t)

	require.NoError(t, s.ClearAll())
	stats, err := s.Stats()
	require.NoError(t, err)
	for name, n := range stats {
		assert.Zero(t, n, name)
	}

	// The marker went with the settings, so seeding works again.
	require.NoError(t, s.SeedAll())
	n, err := st.Customers().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(customerCount), n)
}

func TestReseedRegenerates(t *testing.T) {
	st, s := newSeededStore(t)

	require.NoError(t, s.Reseed())

	n, err := st.Customers().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(customerCount), n)
	n, err = st.Orders().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(orderCount), n)
}

func TestStatsCoversEveryCollection(t *testing.T) {
	_, s := newSeededStore(t)

	stats, err := s.Stats()
	require.NoError(t, err)
	require.Len(t, stats, len(types.StandardCollections))
	assert.Equal(t, int64(customerCount), stats[types.CustomersCollection])
	assert.Equal(t, int64(taskCount), stats[types.TasksCollection])
	assert.Equal(t, int64(logCount), stats[types.LogsCollection])
	assert.Zero(t, stats[types.CacheCollection])
}

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// newTestStore opens a store over a fresh temp directory and closes it
// when the test finishes.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := New()
	require.NoError(t, st.Open(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { st.Close() })
	return st
}

func testCustomer(email string) *types.Customer {
	return &types.Customer{
		Name:       "Ada Lovelace",
		Email:      email,
		Phone:      "+1-555-0100",
		Company:    "Analytical Engines Inc",
		Status:     types.CustomerActive,
		CreateDate: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	st := New()
	assert.ErrorIs(t, st.Open(types.Config{}), types.ErrDataDirEmpty)
}

func TestOpenIsIdempotent(t *testing.T) {
	st := New()
	dir := t.TempDir()
	require.NoError(t, st.Open(types.Config{DataDir: dir}))
	defer st.Close()

	// Second Open is a no-op success, not an error.
	assert.NoError(t, st.Open(types.Config{DataDir: dir}))

	_, err := st.Customers().Add(testCustomer("ada@example.com"))
	assert.NoError(t, err)
}

func TestCloseIsIdempotentAndBlocksOperations(t *testing.T) {
	st := New()
	require.NoError(t, st.Open(types.Config{DataDir: t.TempDir()}))
	require.NoError(t, st.Close())
	assert.NoError(t, st.Close())

	_, err := st.Customers().Add(testCustomer("ada@example.com"))
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = st.Customers().Get(1)
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	_, err = st.Customers().Count()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
	assert.ErrorIs(t, st.ClearCollection(types.CustomersCollection), types.ErrStoreClosed)
	_, err = st.Export()
	assert.ErrorIs(t, err, types.ErrStoreClosed)
}

func TestReopenPreservesData(t *testing.T) {
	dir := t.TempDir()
	st := New()
	require.NoError(t, st.Open(types.Config{DataDir: dir}))

	id, err := st.Customers().Add(testCustomer("ada@example.com"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	require.NoError(t, st.Open(types.Config{DataDir: dir}))
	defer st.Close()

	got, err := st.Customers().Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestCollectionsListsAllInOrder(t *testing.T) {
	st := newTestStore(t)
	assert.Equal(t, types.StandardCollections, st.Collections())
	assert.Len(t, st.Collections(), 8)
}

func TestClearCollectionUnknownName(t *testing.T) {
	st := newTestStore(t)
	assert.ErrorIs(t, st.ClearCollection("widgets"), types.ErrUnknownCollection)
}

func TestInfoReportsSchemaAndCounts(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Customers().Add(testCustomer("ada@example.com"))
	require.NoError(t, err)
	_, err = st.Customers().Add(testCustomer("grace@example.com"))
	require.NoError(t, err)

	info, err := st.Info()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, info.Version)
	assert.Equal(t, types.StandardCollections, info.Collections)
	assert.Equal(t, int64(2), info.Records)
}

package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestExportCoversEveryCollection(t *testing.T) {
	st := newTestStore(t)

	snap, err := st.Export()
	require.NoError(t, err)
	require.Len(t, snap, len(types.StandardCollections))
	for _, name := range types.StandardCollections {
		records, ok := snap[name]
		assert.True(t, ok, "snapshot missing %s", name)
		assert.Empty(t, records)
	}
}

func TestExportedRecordsCarryKeys(t *testing.T) {
	st := newTestStore(t)

	id, err := st.Customers().Add(testCustomer("ada@example.com"))
	require.NoError(t, err)

	snap, err := st.Export()
	require.NoError(t, err)
	require.Len(t, snap[types.CustomersCollection], 1)

	var c types.Customer
	require.NoError(t, json.Unmarshal(snap[types.CustomersCollection][0], &c))
	assert.Equal(t, id, c.ID, "exported document must carry the assigned key")
}

func TestExportImportRoundTrip(t *testing.T) {
	st := newTestStore(t)

	custID, err := st.Customers().Add(testCustomer("ada@example.com"))
	require.NoError(t, err)
	_, err = st.Customers().Add(testCustomer("grace@example.com"))
	require.NoError(t, err)
	_, err = st.Settings().Add(&types.SystemSetting{
		Key:        "site_name",
		Value:      "Larder Admin",
		Category:   "general",
		Type:       types.SettingString,
		UpdateDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	snap, err := st.Export()
	require.NoError(t, err)

	for _, name := range st.Collections() {
		require.NoError(t, st.ClearCollection(name))
	}
	n, err := st.Customers().Count()
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, st.Import(snap))

	n, err = st.Customers().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := st.Customers().Get(custID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@example.com", got.Email)

	setting, err := st.Settings().Get("site_name")
	require.NoError(t, err)
	require.NotNil(t, setting)
	assert.Equal(t, "Larder Admin", setting.Value)
}

func TestImportReplacesExistingContents(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Customers().Add(testCustomer("old@example.com"))
	require.NoError(t, err)

	incoming := testCustomer("new@example.com")
	incoming.ID = 7
	doc, err := json.Marshal(incoming)
	require.NoError(t, err)

	snap := types.Snapshot{
		types.CustomersCollection: []json.RawMessage{doc},
	}
	require.NoError(t, st.Import(snap))

	all, err := st.Customers().All(0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(7), all[0].ID)
	assert.Equal(t, "new@example.com", all[0].Email)
}

func TestImportLeavesAbsentCollectionsUntouched(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Customers().Add(testCustomer("stays@example.com"))
	require.NoError(t, err)

	// Unknown snapshot keys are ignored; absent collections survive.
	snap := types.Snapshot{
		"widgets": []json.RawMessage{json.RawMessage(`{"id":1}`)},
	}
	require.NoError(t, st.Import(snap))

	n, err := st.Customers().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestImportMalformedRecordRollsBackCollection(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Customers().Add(testCustomer("survivor@example.com"))
	require.NoError(t, err)

	snap := types.Snapshot{
		types.CustomersCollection: []json.RawMessage{
			json.RawMessage(`{"not json`),
		},
	}
	require.Error(t, st.Import(snap))

	// The failed import transaction must not have cleared the collection.
	n, err := st.Customers().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

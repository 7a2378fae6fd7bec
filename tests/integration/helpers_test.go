// Package integration exercises the store and seeder together the way
// the CLI drives them: full lifecycle from open through seeding,
// reporting, export, and restore.
package integration

import (
	"testing"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/internal/seed"
	"github.com/mesh-intelligence/larder/internal/store"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// setupStore opens a store over an isolated temp directory. Each test
// gets its own data directory.
func setupStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	dir := t.TempDir()
	st := store.New()
	if err := st.Open(types.Config{DataDir: dir}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st, dir
}

// setupSeeded opens a store and runs a full seeding pass.
func setupSeeded(t *testing.T) (*store.Store, *seed.Seeder) {
	t.Helper()
	st, _ := setupStore(t)
	s := seed.New(st, zap.NewNop().Sugar())
	if err := s.SeedAll(); err != nil {
		t.Fatalf("SeedAll: %v", err)
	}
	return st, s
}

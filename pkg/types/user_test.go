package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid user",
			user: User{Username: "asmith", Email: "a.smith@example.com", Role: RoleEmployee},
		},
		{
			name:    "empty username rejected",
			user:    User{Email: "a@example.com", Role: RoleViewer},
			wantErr: ErrInvalidName,
		},
		{
			name:    "malformed email rejected",
			user:    User{Username: "asmith", Email: "not-an-email", Role: RoleViewer},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "unknown role rejected",
			user:    User{Username: "asmith", Email: "a@example.com", Role: "superuser"},
			wantErr: ErrInvalidRole,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserHasPermission(t *testing.T) {
	u := User{Permissions: []string{"read", "write"}}
	assert.True(t, u.HasPermission("write"))
	assert.False(t, u.HasPermission("delete"))

	var none User
	assert.False(t, none.HasPermission("read"))
}

func TestUserRecordLogin(t *testing.T) {
	u := User{Username: "asmith", Email: "a@example.com", Role: RoleEmployee}
	when := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	u.RecordLogin(when)
	require.NotNil(t, u.LastLogin)
	assert.Equal(t, when, *u.LastLogin)
}

func TestCacheEntryExpired(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	fresh := CacheEntry{Key: "reports:summary", Expiry: now.Add(time.Hour)}
	stale := CacheEntry{Key: "reports:summary", Expiry: now.Add(-time.Hour)}
	unbounded := CacheEntry{Key: "reports:summary"}

	assert.False(t, fresh.Expired(now))
	assert.True(t, stale.Expired(now))
	assert.False(t, unbounded.Expired(now))
}

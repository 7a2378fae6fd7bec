package types

import (
	"strings"
	"time"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
	RoleViewer   = "viewer"
)

var validUserRoles = map[string]bool{
	RoleAdmin:    true,
	RoleManager:  true,
	RoleEmployee: true,
	RoleViewer:   true,
}

// User represents an application account. Username and email are each
// unique across the users collection, enforced by uniqueness indexes.
type User struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Role        string     `json:"role"`
	Department  string     `json:"department"`
	Permissions []string   `json:"permissions"`
	CreateDate  time.Time  `json:"createDate"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	IsActive    bool       `json:"isActive"`
}

// Validate checks required fields and role membership.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrInvalidName
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if !validUserRoles[u.Role] {
		return ErrInvalidRole
	}
	return nil
}

// HasPermission reports whether the user carries the named permission.
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// RecordLogin stamps the last login time.
func (u *User) RecordLogin(now time.Time) {
	t := now
	u.LastLogin = &t
}

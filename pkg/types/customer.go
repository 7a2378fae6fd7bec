package types

import (
	"strings"
	"time"
)

// Customer statuses.
const (
	CustomerActive    = "active"
	CustomerInactive  = "inactive"
	CustomerPotential = "potential"
)

// validCustomerStatuses is the set of recognized customer status values.
var validCustomerStatuses = map[string]bool{
	CustomerActive:    true,
	CustomerInactive:  true,
	CustomerPotential: true,
}

// Customer represents a client company contact. Email is unique across
// the customers collection, enforced by a uniqueness index.
type Customer struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company"`
	Status      string     `json:"status"`
	CreateDate  time.Time  `json:"createDate"`
	LastContact *time.Time `json:"lastContact,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// Validate checks required fields and status membership.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return ErrInvalidName
	}
	if !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	if !validCustomerStatuses[c.Status] {
		return ErrInvalidStatus
	}
	return nil
}

// Touch records a contact with the customer at the given time.
func (c *Customer) Touch(now time.Time) {
	t := now
	c.LastContact = &t
}

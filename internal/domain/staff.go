package domain

import "time"

// Role named set of page permissions for staff users
type Role struct {
	ID      int64
	Name    string
	IsAdmin bool
	Pages   []string // accessible page keys, e.g. "bookings", "venues"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPageAccess returns true if the role grants access to the page
// Admin roles see everything
func (r *Role) HasPageAccess(page string) bool {
	if r.IsAdmin {
		return true
	}
	for _, p := range r.Pages {
		if p == page {
			return true
		}
	}
	return false
}

// StaffUser an authenticated member of staff
type StaffUser struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RoleID       int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

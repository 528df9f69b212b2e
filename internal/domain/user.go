package domain

import "time"

// User is the domain model for account holders. PasswordHash never leaves the
// service layer; outward payloads are built from the other fields only.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Address      string
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Deleted reports whether the soft-delete marker is set.
func (u *User) Deleted() bool {
	return u.DeletedAt != nil
}

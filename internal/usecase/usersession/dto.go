package usersession

import "time"

// StartRequest carries every value needed to open a session.
type StartRequest struct {
	FirstName string
	FullName  string
	Username  string
	Email     string
	DateBirth time.Time
}

// UpdateRequest is a partial update. Nil fields are left untouched.
type UpdateRequest struct {
	FirstName *string
	FullName  *string
	Username  *string
	Email     *string
	DateBirth *time.Time
}

// Profile is a read-only copy of a session's current values.
type Profile struct {
	FirstName string
	FullName  string
	Username  string
	Email     string
	DateBirth time.Time
}

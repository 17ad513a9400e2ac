package models

import "time"

// User represents an account entity used for authentication and note
// ownership. Sensitive fields must never cross a trust boundary.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on registration.
	UserID int64 `json:"id"`

	// Email is the unique login identifier, matched case-sensitively
	// exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. The
	// per-call random salt is embedded in the hash itself. Never
	// serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

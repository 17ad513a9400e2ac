package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned on registration when the email is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note is absent or belongs to a
	// different owner. The two cases are deliberately not distinguished.
	ErrNoteNotFound = errors.New("note not found")

	// ErrBuildingSQLQuery is returned when the query builder fails.
	ErrBuildingSQLQuery = errors.New("error building SQL query")

	// ErrLocalSessionNotFound is returned by the client session store when no
	// session has been persisted yet.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

package models

import "time"

// Credentials is the request body of both auth endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the generic `{"message": ...}` envelope used for
// registration results, deletions, and error bodies.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the body of a successful login: the bearer token plus
// the public view of the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// NotePayload is the request body for note creation and update. Field
// names are capitalized on the wire; both fields are always sent — an
// update is a full replace, never a patch.
type NotePayload struct {
	Title    string `json:"Title"`
	Document string `json:"Document"`
}

// Session is the client-side authenticated session persisted between runs.
type Session struct {
	UserID  int64
	Email   string
	Token   string
	SavedAt time.Time
}

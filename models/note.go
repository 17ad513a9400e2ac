package models

import "time"

// Note is a single user-owned note.
//
// The wire names of Title and Document are capitalized — they are part of
// the public API contract and must be preserved exactly. The remaining
// fields use conventional snake_case.
type Note struct {
	// ID is the server-generated note identifier (UUIDv7).
	ID string `json:"id"`

	// UserID is the owning user. It never appears on the wire: every
	// request is already scoped to the authenticated owner.
	UserID int64 `json:"-"`

	// Title is the note heading. An empty title is stored as
	// "Untitled Note".
	Title string `json:"Title"`

	// Document is the note body. Required on the wire, may be empty.
	Document string `json:"Document"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteDraft is the client-side editor buffer: the note being edited plus
// its local draft content. NoteID is empty until the first successful
// create, after which the server-assigned id is adopted.
type NoteDraft struct {
	NoteID   string
	Title    string
	Document string
}

// Empty reports whether the draft has no content worth saving.
func (d NoteDraft) Empty() bool {
	return d.Title == "" && d.Document == ""
}

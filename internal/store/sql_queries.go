package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/avlasov/go-notes-keeper/models"
)

// psql is the shared statement builder configured for PostgreSQL dollar
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, email, password_hash, created_at").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select("user_id", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildListNotesQuery(userID int64) (string, []any, error) {
	return psql.
		Select("id", "user_id", "title", "document", "created_at", "updated_at").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		ToSql()
}

func buildGetNoteQuery(userID int64, noteID string) (string, []any, error) {
	return psql.
		Select("id", "user_id", "title", "document", "created_at", "updated_at").
		From("notes").
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql.
		Insert("notes").
		Columns("id", "user_id", "title", "document").
		Values(note.ID, note.UserID, note.Title, note.Document).
		Suffix("RETURNING id, user_id, title, document, created_at, updated_at").
		ToSql()
}

// buildUpdateNoteQuery always replaces both title and document — updates
// carry full-replace semantics, never a partial patch.
func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	return psql.
		Update("notes").
		Set("title", note.Title).
		Set("document", note.Document).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": note.ID, "user_id": note.UserID}).
		Suffix("RETURNING id, user_id, title, document, created_at, updated_at").
		ToSql()
}

func buildDeleteNoteQuery(userID int64, noteID string) (string, []any, error) {
	return psql.
		Delete("notes").
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

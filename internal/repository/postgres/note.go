package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pandey-i/note-taking-app/internal/model"
)

const noteColumns = `id, user_id, title, content, created_at, updated_at`

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (` + noteColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + noteColumns

	saved, err := scanNote(r.db.QueryRow(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt,
	))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return saved, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND user_id = $2`

	note, err := scanNote(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		return model.Note{}, wrapNotFound(err, "failed to get note")
	}

	return note, nil
}

// GetByOwner returns the owner's notes, newest first.
func (r *NoteRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, ownerID, id uuid.UUID, title, content string) (model.Note, error) {
	query := `UPDATE notes SET title = $3, content = $4, updated_at = now()
			  WHERE id = $1 AND user_id = $2
			  RETURNING ` + noteColumns

	note, err := scanNote(r.db.QueryRow(ctx, query, id, ownerID, title, content))
	if err != nil {
		return model.Note{}, wrapNotFound(err, "failed to update note")
	}

	return note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanNote(row pgx.Row) (model.Note, error) {
	var note model.Note
	err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	return note, err
}

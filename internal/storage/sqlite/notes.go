package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

type NotesRepo struct {
	db *sql.DB
}

func NewNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{db: db}
}

func (r *NotesRepo) Add(ctx context.Context, userID, noteText, noteType string, importance float64) error {
	query := `INSERT INTO long_term_notes (user_id, note_type, note_text, importance) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, userID, noteType, noteText, importance)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (r *NotesRepo) List(ctx context.Context, userID, noteType string) ([]string, error) {
	query := `SELECT note_text FROM long_term_notes WHERE user_id = ? ORDER BY importance DESC, id DESC`
	args := []any{userID}

	if noteType != "" {
		query = `SELECT note_text FROM long_term_notes WHERE user_id = ? AND note_type = ? ORDER BY importance DESC, id DESC`
		args = append(args, noteType)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, text)
	}

	return notes, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hawsadev/hawsa/internal/core"
	"github.com/hawsadev/hawsa/pkg/log"
)

type InteractionsRepo struct {
	db *sql.DB
}

func NewInteractionsRepo(db *sql.DB) *InteractionsRepo {
	return &InteractionsRepo{db: db}
}

func (r *InteractionsRepo) Add(ctx context.Context, userID, role, content string, tags []string, summary string) error {
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	// A nil tag slice marshals to "null"; the column contract is a JSON array
	tagsStr := string(tagsJSON)
	if tagsStr == "null" {
		tagsStr = "[]"
	}

	query := `INSERT INTO conversation_memory (user_id, role, content, summary, tags) VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, userID, role, content, summary, tagsStr)
	if err != nil {
		return fmt.Errorf("failed to insert interaction: %w", err)
	}
	return nil
}

func (r *InteractionsRepo) RecentContext(ctx context.Context, userID string, limit int) ([]core.Interaction, error) {
	// Fetch the LAST 'limit' interactions by ordering DESC
	query := `SELECT id, role, content, summary, tags, created_at FROM conversation_memory WHERE user_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	var items []core.Interaction
	for rows.Next() {
		var it core.Interaction
		var summary, tagsStr sql.NullString

		// Use NullString to safely handle potential NULLs in DB
		if err := rows.Scan(&it.ID, &it.Role, &it.Content, &summary, &tagsStr, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}

		it.UserID = userID
		it.Summary = summary.String
		it.Tags = decodeTags(ctx, tagsStr.String)

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query returned interactions Newest -> Oldest; reverse them back
	// to chronological order (oldest first) for the caller.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(items)).Msg("loaded recent context")
	return items, nil
}

// decodeTags tolerates corrupted tag encodings: anything that does not
// parse as a JSON array degrades to an empty tag set instead of failing
// the read.
func decodeTags(ctx context.Context, raw string) []string {
	if raw == "" || raw == "null" {
		return []string{}
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		log.FromCtx(ctx).Warn().Str("tags", raw).Msg("corrupted tag encoding, substituting empty set")
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

package entries

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/refugio/internal/dbx"
	"github.com/dmitrijs2005/refugio/internal/server/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query, args, err := psql.
		Insert("entries").
		Columns("id", "user_id", "content", "emotion").
		Values(entry.ID, entry.UserID, entry.Content, string(entry.Emotion)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string, limit uint64) ([]*models.Entry, error) {
	query, args, err := psql.
		Select("id", "user_id", "content", "emotion", "created_at").
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0, limit)
	for rows.Next() {
		e := &models.Entry{}
		var emotion string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Content, &emotion, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.Emotion = models.Emotion(emotion)
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/refugio/internal/common"
	"github.com/dmitrijs2005/refugio/internal/dbx"
	"github.com/dmitrijs2005/refugio/internal/server/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const onConflict = `ON CONFLICT (user_id) DO UPDATE SET
	name = EXCLUDED.name,
	pronouns = EXCLUDED.pronouns,
	color = EXCLUDED.color,
	emotions = EXCLUDED.emotions,
	reminder_enabled = EXCLUDED.reminder_enabled,
	reminder_hour = EXCLUDED.reminder_hour,
	reminder_minute = EXCLUDED.reminder_minute,
	updated_at = now()
	RETURNING updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query, args, err := psql.
		Select("user_id", "name", "pronouns", "color", "emotions",
			"reminder_enabled", "reminder_hour", "reminder_minute", "updated_at").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	p := &models.Profile{}
	var emotions []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.UserID, &p.Name, &p.Pronouns, &p.Color, &emotions,
		&p.Reminder.Enabled, &p.Reminder.Hour, &p.Reminder.Minute, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(emotions, &p.Emotions); err != nil {
		return nil, fmt.Errorf("decode emotions: %w", err)
	}
	if p.Emotions == nil {
		p.Emotions = []string{}
	}
	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	emotions := p.Emotions
	if emotions == nil {
		emotions = []string{}
	}
	encoded, err := json.Marshal(emotions)
	if err != nil {
		return nil, fmt.Errorf("encode emotions: %w", err)
	}

	query, args, err := psql.
		Insert("profiles").
		Columns("user_id", "name", "pronouns", "color", "emotions",
			"reminder_enabled", "reminder_hour", "reminder_minute").
		Values(p.UserID, p.Name, p.Pronouns, p.Color, string(encoded),
			p.Reminder.Enabled, p.Reminder.Hour, p.Reminder.Minute).
		Suffix(onConflict).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.Emotions = emotions
	return p, nil
}

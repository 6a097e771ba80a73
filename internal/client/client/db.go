package client

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/refugio/internal/client/migrations"
	"github.com/dmitrijs2005/refugio/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/refugio/internal/client/repositories/metadata"
)

// Repositories bundles the local stores backed by one SQLite file.
type Repositories struct {
	DB       *sql.DB
	Metadata metadata.Repository
	Drafts   drafts.Repository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

// InitDatabase opens (or creates) the SQLite database at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer; the autosave ticker and the REPL share it
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("local database: %w", err)
	}

	return &Repositories{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
		Drafts:   drafts.NewSQLiteRepository(db),
	}, nil
}

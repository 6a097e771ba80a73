package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/refugio/internal/dbx"
	"github.com/dmitrijs2005/refugio/internal/server/repositories/entries"
	"github.com/dmitrijs2005/refugio/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/refugio/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/refugio/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Entries(db dbx.DBTX) entries.Repository
	Profiles(db dbx.DBTX) profiles.Repository
}

// Package repomanager defines the factory contract that vends repository
// implementations bound to a DBTX, plus the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/questionboard/questionboard/internal/dbx"
	"github.com/questionboard/questionboard/internal/server/repositories/refreshtokens"
	"github.com/questionboard/questionboard/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to the given DBTX, so services
// can run repository calls either directly on the DB or inside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

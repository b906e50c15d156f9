package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/server/repositories/objects"
	"github.com/dmitrijs2005/memoryvault/internal/server/repositories/vaults"
)

// RepositoryManager vends repositories bound to a *sql.DB or *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Vaults(db dbx.DBTX) vaults.Repository
	Objects(db dbx.DBTX) objects.Repository
}

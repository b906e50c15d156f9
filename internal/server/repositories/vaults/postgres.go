package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
)

// PostgresRepository implements vault storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Vault, error) {
	query :=
		`SELECT id, owner_id, created_at FROM vaults
		 WHERE owner_id = $1
		 `

	v := &models.Vault{}
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&v.ID, &v.OwnerID, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

// Create inserts a vault for ownerID. A concurrent insert for the same owner
// is absorbed by the upsert and the existing row is returned.
func (r *PostgresRepository) Create(ctx context.Context, ownerID string) (*models.Vault, error) {
	query :=
		`INSERT INTO vaults (owner_id)
		 VALUES ($1)
		 ON CONFLICT (owner_id) DO UPDATE SET owner_id = EXCLUDED.owner_id
		 RETURNING id, owner_id, created_at
		 `

	v := &models.Vault{}
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&v.ID, &v.OwnerID, &v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return v, nil
}

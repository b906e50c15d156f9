package objects

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/server/models"
)

// Repository persists object descriptor rows.
type Repository interface {
	Create(ctx context.Context, row *models.ObjectRow) error
	// FindInVault returns common.ErrorNotFound when key does not exist or
	// belongs to another vault. Callers cannot tell the two apart.
	FindInVault(ctx context.Context, key, vaultID string) (*models.ObjectRow, error)
	Delete(ctx context.Context, key string) error
	ListByVault(ctx context.Context, vaultID string) ([]*models.ObjectRow, error)
}

package vaults

import (
	"context"

	"github.com/dmitrijs2005/memoryvault/internal/server/models"
)

type Repository interface {
	// GetByOwner returns common.ErrorNotFound when the owner has no vault.
	GetByOwner(ctx context.Context, ownerID string) (*models.Vault, error)
	// Create returns the owner's vault, creating it if needed.
	Create(ctx context.Context, ownerID string) (*models.Vault, error)
}

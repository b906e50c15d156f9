package objects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
)

// PostgresRepository implements descriptor storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const objectColumns = `key, vault_id, privacy_level, kind, mime_type, size, original_name,
		encryption_iv, encryption_auth_tag, created_at`

// Create inserts row and fills in CreatedAt from the database.
func (r *PostgresRepository) Create(ctx context.Context, row *models.ObjectRow) error {
	query := `
		INSERT INTO objects (key, vault_id, privacy_level, kind, mime_type, size, original_name,
			encryption_iv, encryption_auth_tag)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		row.Key, row.VaultID, row.PrivacyLevel, row.Kind, row.MimeType, row.Size, row.OriginalName,
		row.EncryptionIV, row.EncryptionAuthTag).Scan(&row.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindInVault loads the row for key only if it belongs to vaultID.
func (r *PostgresRepository) FindInVault(ctx context.Context, key, vaultID string) (*models.ObjectRow, error) {
	query := `SELECT ` + objectColumns + ` FROM objects
		WHERE key = $1 AND vault_id = $2
	`
	row, err := scanRow(r.db.QueryRowContext(ctx, query, key, vaultID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return row, nil
}

// Delete removes the row for key. Deleting a missing row is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM objects WHERE key = $1`
	result, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra > 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

// ListByVault returns every row of vaultID, newest first.
func (r *PostgresRepository) ListByVault(ctx context.Context, vaultID string) ([]*models.ObjectRow, error) {
	query := `SELECT ` + objectColumns + ` FROM objects
		WHERE vault_id = $1
		ORDER BY created_at DESC, key
	`
	rows, err := r.db.QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to select objects: %w", err)
	}
	defer rows.Close()

	var result []*models.ObjectRow
	for rows.Next() {
		item, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (*models.ObjectRow, error) {
	var row models.ObjectRow
	err := s.Scan(&row.Key, &row.VaultID, &row.PrivacyLevel, &row.Kind, &row.MimeType, &row.Size,
		&row.OriginalName, &row.EncryptionIV, &row.EncryptionAuthTag, &row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

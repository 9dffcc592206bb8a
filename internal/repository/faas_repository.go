package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/faasdoc/internal/database"
	"github.com/stwalsh4118/faasdoc/internal/models"
)

// FaasRepository defines read access to stored FAAS payloads.
type FaasRepository interface {
	// FindByID returns the raw payload stored under faasID.
	// Returns nil, nil if no record exists (not an error).
	// Returns error only for database failures or an undecodable payload.
	FindByID(ctx context.Context, faasID string) (*models.FaasPayload, error)
}

// rowQuerier is the subset of pgxpool.Pool the repository needs.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// faasRepository is the concrete implementation of FaasRepository.
type faasRepository struct {
	db rowQuerier
}

// NewFaasRepository creates a new instance of FaasRepository.
func NewFaasRepository(db *database.Database) FaasRepository {
	return &faasRepository{
		db: db.Pool,
	}
}

const findByIDQuery = `
	SELECT payload
	FROM faas_records
	WHERE faas_id = $1
`

// FindByID loads the jsonb payload for faasID and decodes it.
func (r *faasRepository) FindByID(ctx context.Context, faasID string) (*models.FaasPayload, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, findByIDQuery, faasID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query faas record %q: %w", faasID, err)
	}

	var payload models.FaasPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload for faas record %q: %w", faasID, err)
	}

	return &payload, nil
}

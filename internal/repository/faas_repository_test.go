package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/faasdoc/internal/config"
	"github.com/stwalsh4118/faasdoc/internal/database"
)

// stubRow returns a canned payload or error from Scan.
type stubRow struct {
	payload []byte
	err     error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

// stubQuerier records the last query arguments and returns row.
type stubQuerier struct {
	row  stubRow
	args []any
}

func (q *stubQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	q.args = args
	return q.row
}

func TestFindByID_DecodesPayload(t *testing.T) {
	q := &stubQuerier{row: stubRow{payload: []byte(`{
		"faas": {"faas_id": "F-001", "property_kind": "Land", "taxable": 1},
		"land": {"appraisal": {"area": "1,250.5", "unit_value": 800}}
	}`)}}
	repo := &faasRepository{db: q}

	payload, err := repo.FindByID(context.Background(), "F-001")

	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, []any{"F-001"}, q.args)
	assert.Equal(t, "F-001", payload.Faas.FaasID.String())
	assert.Equal(t, "1", payload.Faas.Taxable.String())
	require.NotNil(t, payload.Land)
	assert.Equal(t, "1,250.5", payload.Land.Appraisal.Area.String())
	assert.Nil(t, payload.Building)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := &faasRepository{db: &stubQuerier{row: stubRow{err: pgx.ErrNoRows}}}

	payload, err := repo.FindByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestFindByID_QueryError(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := &faasRepository{db: &stubQuerier{row: stubRow{err: dbErr}}}

	payload, err := repo.FindByID(context.Background(), "F-001")

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "F-001")
}

func TestFindByID_CorruptPayload(t *testing.T) {
	repo := &faasRepository{db: &stubQuerier{row: stubRow{payload: []byte(`{"faas": [}`)}}}

	payload, err := repo.FindByID(context.Background(), "F-001")

	assert.Nil(t, payload)
	assert.ErrorContains(t, err, "failed to decode payload")
}

func TestFindByID_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "host.docker.internal"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		Name:     getEnvOrDefault("DB_NAME", "rptas"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		PoolMin:  1,
		PoolMax:  2,
	}

	db, err := database.NewPostgresPool(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.EnsureSchema(ctx))

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO faas_records (faas_id, payload)
		VALUES ($1, $2)
		ON CONFLICT (faas_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		"it-faas-001", `{"faas": {"faas_id": "it-faas-001", "property_kind": "Machinery"}}`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Pool.Exec(context.Background(), `DELETE FROM faas_records WHERE faas_id = $1`, "it-faas-001")
	})

	repo := NewFaasRepository(db)

	payload, err := repo.FindByID(ctx, "it-faas-001")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, "Machinery", payload.Faas.PropertyKind.String())

	missing, err := repo.FindByID(ctx, "it-faas-does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

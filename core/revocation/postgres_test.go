package revocation_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authguard/core/revocation"
	"github.com/dmitrymomot/authguard/integration/database/pg"
)

// newPostgresPool connects to the database named by TEST_POSTGRES_URL and
// installs the schema. Tests are skipped when the variable is unset.
func newPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connURL := os.Getenv("TEST_POSTGRES_URL")
	if connURL == "" {
		t.Skip("TEST_POSTGRES_URL is not set; skipping Postgres store tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, revocation.Migrations))

	return pool
}

func newPostgresStore(t *testing.T) *revocation.PostgresStore {
	t.Helper()
	return revocation.NewPostgresStore(newPostgresPool(t), revocation.WithQueryTimeout(time.Second))
}

func TestPostgresStoreDefaultDeny(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)

	valid, err := store.IsValid(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, valid, "unknown token identifiers must be invalid")
}

func TestPostgresStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)

	tokenID := uuid.NewString()
	expiry := time.Now().Add(time.Hour)

	require.NoError(t, store.Record(ctx, tokenID, expiry))

	valid, err := store.IsValid(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, valid)

	require.NoError(t, store.Revoke(ctx, tokenID, expiry))

	valid, err = store.IsValid(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, valid)

	// Issuance retry must not clear the revocation.
	require.NoError(t, store.Record(ctx, tokenID, expiry))
	valid, err = store.IsValid(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestPostgresStoreExpiredRecord(t *testing.T) {
	ctx := context.Background()
	store := newPostgresStore(t)

	tokenID := uuid.NewString()

	require.NoError(t, store.Record(ctx, tokenID, time.Now().Add(-time.Minute)))

	valid, err := store.IsValid(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, valid, "expired records must not validate")

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))
}

func TestPostgresStoreInTx(t *testing.T) {
	ctx := context.Background()
	pool := newPostgresPool(t)
	store := revocation.NewPostgresStore(pool, revocation.WithQueryTimeout(time.Second))

	tokenID := uuid.NewString()
	expiry := time.Now().Add(time.Hour)
	require.NoError(t, store.Record(ctx, tokenID, expiry))

	// A rolled-back transaction must leave the revocation unapplied.
	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, store.InTx(tx).Revoke(ctx, tokenID, expiry))
	require.NoError(t, tx.Rollback(ctx))

	valid, err := store.IsValid(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, valid)

	// A committed transaction applies it.
	tx, err = pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, store.InTx(tx).Revoke(ctx, tokenID, expiry))
	require.NoError(t, tx.Commit(ctx))

	valid, err = store.IsValid(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, valid)
}

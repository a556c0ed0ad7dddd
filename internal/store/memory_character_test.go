package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/MKhiriev/agent-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_EmptyStore(t *testing.T) {
	repo := NewMemoryCharacterRepository()

	got, err := repo.GetAllCharacters(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoryRepository_CommitAndOrder(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCharacter(ctx, models.Character{ID: 3, Name: "Zed"}))
	require.NoError(t, tx.InsertCharacterOrIgnore(ctx, models.Character{ID: 1, Name: "Alpha"}))
	require.NoError(t, tx.InsertCharacterOrIgnore(ctx, models.Character{ID: 2, Name: "Alpha"}))

	// staged rows are invisible until commit
	before, err := repo.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)

	require.NoError(t, tx.Commit())

	got, err := repo.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Character{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Alpha"},
		{ID: 3, Name: "Zed"},
	}, got)
}

func TestMemoryRepository_FirstWriteWins(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCharacterOrIgnore(ctx, models.Character{ID: 1, Name: "First"}))
	require.NoError(t, tx.InsertCharacterOrIgnore(ctx, models.Character{ID: 1, Name: "Second"}))
	assert.ErrorIs(t, tx.InsertCharacter(ctx, models.Character{ID: 1, Name: "Third"}), ErrCharacterAlreadyExists)
	require.NoError(t, tx.Commit())

	got, err := repo.GetAllCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "First", got[0].Name)
}

func TestMemoryRepository_DuplicateAgainstCommitted(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	tx, _ := repo.Begin(ctx)
	require.NoError(t, tx.InsertCharacter(ctx, models.Character{ID: 1, Name: "Spectrum"}))
	require.NoError(t, tx.Commit())

	tx, _ = repo.Begin(ctx)
	assert.ErrorIs(t, tx.InsertCharacter(ctx, models.Character{ID: 1, Name: "Spectrum"}), ErrCharacterAlreadyExists)
	require.NoError(t, tx.Rollback())
}

func TestMemoryRepository_Rollback(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	tx, err := repo.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCharacter(ctx, models.Character{ID: 1, Name: "A"}))
	require.NoError(t, tx.Rollback())

	assert.ErrorIs(t, tx.InsertCharacter(ctx, models.Character{ID: 2}), sql.ErrTxDone)
	assert.Error(t, tx.Commit())

	got, err := repo.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRepository_DeleteAllIsIdempotent(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx := context.Background()

	tx, _ := repo.Begin(ctx)
	require.NoError(t, tx.InsertCharacter(ctx, models.Character{ID: 1, Name: "A"}))
	require.NoError(t, tx.Commit())

	require.NoError(t, repo.DeleteAllCharacters(ctx))
	require.NoError(t, repo.DeleteAllCharacters(ctx))

	got, err := repo.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryCharacterRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Begin(ctx)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

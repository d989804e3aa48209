package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestFileStatsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round-trips the counters through the file", func(t *testing.T) {
		// Given: stats saved to a fresh path
		path := filepath.Join(t.TempDir(), "stats.json")
		repo := NewFileStatsRepository(path)

		stats := &entity.Stats{Wins: 4, Losses: 2, Ties: 1}
		require.NoError(t, repo.Save(ctx, stats))

		// When: loading from the same path
		loaded, err := repo.Load(ctx)

		// Then: identical counters come back
		require.NoError(t, err)
		assert.Equal(t, stats, loaded)
	})

	t.Run("Missing file loads as zero stats without error", func(t *testing.T) {
		repo := NewFileStatsRepository(filepath.Join(t.TempDir(), "missing.json"))

		loaded, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.NewStats(), loaded)
	})

	t.Run("Missing fields default to zero", func(t *testing.T) {
		// Given: a stats file with only wins recorded
		path := filepath.Join(t.TempDir(), "stats.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"wins": 7}`), 0o644))

		loaded, err := NewFileStatsRepository(path).Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{Wins: 7}, loaded)
	})

	t.Run("Corrupt file reports unreadable stats and zero counters", func(t *testing.T) {
		// Given: a file that is not valid JSON
		path := filepath.Join(t.TempDir(), "stats.json")
		require.NoError(t, os.WriteFile(path, []byte("not-json{"), 0o644))

		loaded, err := NewFileStatsRepository(path).Load(ctx)

		// Then: the error is flagged but usable zero stats come back
		assert.ErrorIs(t, err, ErrStatsUnreadable)
		assert.Equal(t, entity.NewStats(), loaded)
	})

	t.Run("Save creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "stats.json")
		repo := NewFileStatsRepository(path)

		require.NoError(t, repo.Save(ctx, &entity.Stats{Ties: 5}))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, loaded.Ties)
	})
}

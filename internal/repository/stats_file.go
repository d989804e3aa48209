package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type fileStats struct {
	path string
}

// NewFileStatsRepository - persists stats as a JSON object with integer
// wins/losses/ties fields at the given path.
func NewFileStatsRepository(path string) StatsRepository {
	return &fileStats{
		path: path,
	}
}

func (that *fileStats) Load(_ context.Context) (*entity.Stats, error) {
	raw, err := os.ReadFile(that.path)
	if os.IsNotExist(err) {
		return entity.NewStats(), nil
	}

	if err != nil {
		return entity.NewStats(), fmt.Errorf("%w: %w", ErrStatsUnreadable, err)
	}

	var stats entity.Stats
	if err = json.Unmarshal(raw, &stats); err != nil {
		return entity.NewStats(), fmt.Errorf("%w: %w", ErrStatsUnreadable, err)
	}

	return &stats, nil
}

func (that *fileStats) Save(_ context.Context, stats *entity.Stats) error {
	raw, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if dir := filepath.Dir(that.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}

	if err = os.WriteFile(that.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// ErrStatsUnreadable marks a stats source that exists but can't be decoded.
// Callers fall back to zero-valued stats and keep the session running.
var ErrStatsUnreadable = errors.New("stats are unreadable")

// StatsRepository abstracts where the scoreboard lives. A missing source is
// not an error: Load returns zero-valued stats for it.
type StatsRepository interface {
	Load(ctx context.Context) (*entity.Stats, error)
	Save(ctx context.Context, stats *entity.Stats) error
}

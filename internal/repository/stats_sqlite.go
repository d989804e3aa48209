package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type sqliteStats struct {
	db *sqlx.DB
}

// NewSQLiteStatsRepository - keeps the scoreboard in a single-row stats table.
func NewSQLiteStatsRepository(db *sqlx.DB) StatsRepository {
	return &sqliteStats{
		db: db,
	}
}

func (that *sqliteStats) Load(ctx context.Context) (*entity.Stats, error) {
	var stats entity.Stats

	query := `SELECT wins, losses, ties FROM stats WHERE id = 1`

	err := that.db.GetContext(ctx, &stats, query)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.NewStats(), nil
	}

	if err != nil {
		return entity.NewStats(), fmt.Errorf("failed to get stats: %w", err)
	}

	return &stats, nil
}

func (that *sqliteStats) Save(ctx context.Context, stats *entity.Stats) error {
	query := `INSERT INTO stats (id, wins, losses, ties) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET wins = excluded.wins, losses = excluded.losses, ties = excluded.ties`

	_, err := that.db.ExecContext(ctx, query, stats.Wins, stats.Losses, stats.Ties)
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}

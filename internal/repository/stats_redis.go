package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const statsKey = "tictactoe:stats"

type redisStats struct {
	client *redis.Client
}

// NewRedisStatsRepository - keeps the scoreboard as a JSON blob under a fixed key.
func NewRedisStatsRepository(client *redis.Client) StatsRepository {
	return &redisStats{
		client: client,
	}
}

func (that *redisStats) Load(ctx context.Context) (*entity.Stats, error) {
	response, err := that.client.Get(ctx, statsKey).Result()

	if errors.Is(err, redis.Nil) {
		return entity.NewStats(), nil
	}

	if err != nil {
		return entity.NewStats(), fmt.Errorf("failed to get stats: %w", err)
	}

	var stats entity.Stats
	if err = json.Unmarshal([]byte(response), &stats); err != nil {
		return entity.NewStats(), fmt.Errorf("%w: %w", ErrStatsUnreadable, err)
	}

	return &stats, nil
}

func (that *redisStats) Save(ctx context.Context, stats *entity.Stats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err = that.client.Set(ctx, statsKey, statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}

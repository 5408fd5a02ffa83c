package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/apstld/freelance-alert-bot/internal/modules/stats/domain"
	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
)

const statsKey = "worker:cycle_stats"

// RedisStorage implements stats.Repository on Redis, for deployments where
// the worker and bot run on hosts without a shared disk. Snapshots expire so a
// dead worker is reported as "no data" instead of stale numbers.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage connects to Redis and verifies the connection
func NewRedisStorage(ctx context.Context, redisURL string, ttl time.Duration) (Repository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, oops.With("context", "invalid redis url").Wrap(err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, oops.With("context", "failed to connect to redis").Wrap(err)
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisStorage{client: client, ttl: ttl}, nil
}

func (s *RedisStorage) Write(ctx context.Context, stats *domain.CycleStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return oops.With("context", "failed to marshal stats").Wrap(err)
	}
	if err := s.client.Set(ctx, statsKey, data, s.ttl).Err(); err != nil {
		return oops.With("context", "failed to write stats to redis").Wrap(err)
	}
	return nil
}

func (s *RedisStorage) Read(ctx context.Context) (*domain.CycleStats, error) {
	data, err := s.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, oops.With("context", "failed to read stats from redis").Wrap(err)
	}

	var stats domain.CycleStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, oops.With("context", "failed to unmarshal stats").Wrap(err)
	}
	return &stats, nil
}

package repository

import (
	"context"
	"time"

	"prdgen/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	usageKeyPrefix = "prdgen:usage:"
	usageKeyTTL    = 90 * 24 * time.Hour
)

// UsageCounter keeps the same daily counters as UsageRepository in Redis
// hashes, one per provider and day.
type UsageCounter struct {
	client *redis.Client
}

func NewUsageCounter(client *redis.Client) *UsageCounter {
	return &UsageCounter{client: client}
}

func usageKey(apiName string, day time.Time) string {
	return usageKeyPrefix + apiName + ":" + day.Format("2006-01-02")
}

func (c *UsageCounter) Record(ctx context.Context, apiName string, day time.Time, tokens int) error {
	key := usageKey(apiName, day)

	pipe := c.client.TxPipeline()
	pipe.HIncrBy(ctx, key, "request_count", 1)
	pipe.HIncrBy(ctx, key, "token_count", int64(tokens))
	pipe.Expire(ctx, key, usageKeyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *UsageCounter) GetUsage(ctx context.Context, apiName string, day time.Time) (*model.ApiUsage, error) {
	var counts struct {
		RequestCount int `redis:"request_count"`
		TokenCount   int `redis:"token_count"`
	}

	res := c.client.HGetAll(ctx, usageKey(apiName, day))
	if err := res.Err(); err != nil {
		return nil, err
	}
	if len(res.Val()) == 0 {
		return nil, nil
	}
	if err := res.Scan(&counts); err != nil {
		return nil, err
	}

	return &model.ApiUsage{
		ApiName:      apiName,
		UsageDate:    day.Truncate(24 * time.Hour),
		RequestCount: counts.RequestCount,
		TokenCount:   counts.TokenCount,
	}, nil
}

func (c *UsageCounter) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

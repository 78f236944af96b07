package leaderboard

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const xpKey = "leaderboard:xp"

// RedisRanker keeps the ranking in a Redis sorted set.
type RedisRanker struct {
	client *redis.Client
}

var _ Ranker = (*RedisRanker)(nil)

func NewRedisRanker(client *redis.Client) *RedisRanker {
	return &RedisRanker{client: client}
}

func (r *RedisRanker) Record(ctx context.Context, username string, totalXP int) error {
	return r.client.ZAdd(ctx, xpKey, redis.Z{
		Score:  float64(totalXP),
		Member: username,
	}).Err()
}

// Warm loads entries into the sorted set in one round trip. Used at start-up
// so Redis reflects the database snapshot.
func (r *RedisRanker) Warm(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	members := make([]redis.Z, len(entries))
	for i, e := range entries {
		members[i] = redis.Z{Score: float64(e.TotalXP), Member: e.Username}
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, xpKey)
		pipe.ZAdd(ctx, xpKey, members...)
		return nil
	})
	return err
}

func (r *RedisRanker) Top(ctx context.Context, limit int) ([]Entry, error) {
	// ZREVRANGE returns highest to lowest
	results, err := r.client.ZRevRangeWithScores(ctx, xpKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(results))
	for i, result := range results {
		entries[i] = Entry{
			Username: result.Member.(string),
			TotalXP:  int64(result.Score),
			Rank:     int64(i) + 1,
		}
	}
	return entries, nil
}

// Rank returns the user's 1-based position, or Rank 0 when absent.
func (r *RedisRanker) Rank(ctx context.Context, username string) (Entry, error) {
	entry := Entry{Username: username}

	rank, err := r.client.ZRevRank(ctx, xpKey, username).Result()
	if errors.Is(err, redis.Nil) {
		return entry, nil
	}
	if err != nil {
		return entry, err
	}

	score, err := r.client.ZScore(ctx, xpKey, username).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return entry, err
	}

	entry.Rank = rank + 1
	entry.TotalXP = int64(score)
	return entry, nil
}

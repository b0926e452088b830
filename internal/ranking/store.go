package ranking

import (
	"Marquee/internal/pkg/redis"
	"context"

	redisv9 "github.com/redis/go-redis/v9"
)

// Entry 排行榜条目
type Entry struct {
	Member string
	Score  float64
}

// Store 排行榜存储：按榜单 key 维护 成员→分数 的有序结构。
// 它只是可重算的派生缓存，读侧要容忍分数落后于计数器。
type Store interface {
	Upsert(ctx context.Context, key, member string, score float64) error
	UpsertBatch(ctx context.Context, key string, entries []Entry) error
	Remove(ctx context.Context, key, member string) error
	TopN(ctx context.Context, key string, n int64) ([]Entry, error)
}

type redisStore struct{}

// NewRedisStore 基于 Redis ZSet 的榜单实现
func NewRedisStore() Store {
	return &redisStore{}
}

func (s *redisStore) Upsert(ctx context.Context, key, member string, score float64) error {
	return redis.ZAdd(ctx, key, score, member)
}

func (s *redisStore) UpsertBatch(ctx context.Context, key string, entries []Entry) error {
	members := make([]redisv9.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, redisv9.Z{Score: e.Score, Member: e.Member})
	}
	return redis.ZAddBatch(ctx, key, members)
}

func (s *redisStore) Remove(ctx context.Context, key, member string) error {
	return redis.ZRem(ctx, key, member)
}

func (s *redisStore) TopN(ctx context.Context, key string, n int64) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	zs, err := redis.ZRevRangeWithScores(ctx, key, 0, n-1)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		entries = append(entries, Entry{Member: member, Score: z.Score})
	}
	return entries, nil
}

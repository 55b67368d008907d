package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"welfare/internal/ratelimit/authlockout"
)

const redisKeyPrefix = "welfare:login_lockout:"

const (
	fieldFailures     = "failures"
	fieldFirstFailure = "first_failure"
	fieldLockedUntil  = "locked_until"
)

// Redis shares lockout records between server instances. Each record is a
// hash that expires with its window, or with its lock when that ends later.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) Get(ctx context.Context, key string, _ time.Time) (*authlockout.Record, error) {
	fields, err := s.client.HGetAll(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return nil, fmt.Errorf("get lockout record: %w", err)
	}
	return parseRecord(key, fields)
}

func (s *Redis) RecordFailure(ctx context.Context, key string, now time.Time, window time.Duration) (*authlockout.Record, error) {
	k := redisKeyPrefix + key
	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, k, fieldFailures, 1)
	pipe.HSetNX(ctx, k, fieldFirstFailure, now.UnixNano())
	pipe.ExpireNX(ctx, k, window)
	all := pipe.HGetAll(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("record login failure: %w", err)
	}
	return parseRecord(key, all.Val())
}

func (s *Redis) Lock(ctx context.Context, key string, until time.Time) error {
	k := redisKeyPrefix + key
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, k, fieldLockedUntil, until.UnixNano())
	pipe.PExpireAt(ctx, k, until)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("lock login: %w", err)
	}
	return nil
}

func (s *Redis) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("clear lockout record: %w", err)
	}
	return nil
}

func parseRecord(key string, fields map[string]string) (*authlockout.Record, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	record := &authlockout.Record{Key: key}
	if v, ok := fields[fieldFailures]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse lockout failures: %w", err)
		}
		record.Failures = n
	}
	if v, ok := fields[fieldFirstFailure]; ok {
		t, err := parseUnixNano(v)
		if err != nil {
			return nil, err
		}
		record.FirstFailure = t
	}
	if v, ok := fields[fieldLockedUntil]; ok {
		t, err := parseUnixNano(v)
		if err != nil {
			return nil, err
		}
		record.LockedUntil = &t
	}
	return record, nil
}

func parseUnixNano(v string) (time.Time, error) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse lockout timestamp: %w", err)
	}
	return time.Unix(0, n).UTC(), nil
}

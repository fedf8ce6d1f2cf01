package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"food-agent/internal/domain"
)

// RedisStore keeps carts in Redis so several webhook instances can share
// them. Each cart lives under cart:<conversation> with a TTL, so abandoned
// conversations expire instead of leaking.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Close() error { return s.client.Close() }

func cartKey(conversationID string) string { return "cart:" + conversationID }

func (s *RedisStore) Merge(ctx context.Context, conversationID string, lines []Line) ([]Line, error) {
	cart, _, err := s.load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	cart = mergeLines(cart, lines)
	if err := s.save(ctx, conversationID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *RedisStore) Remove(ctx context.Context, conversationID string, names []string) ([]string, []string, error) {
	cart, ok, err := s.load(ctx, conversationID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, domain.ErrNotFound
	}

	cart, removed, missing := removeLines(cart, names)

	if len(cart) == 0 {
		if err := s.client.Del(ctx, cartKey(conversationID)).Err(); err != nil {
			return nil, nil, fmt.Errorf("delete cart: %w", err)
		}
	} else if err := s.save(ctx, conversationID, cart); err != nil {
		return nil, nil, err
	}
	return removed, missing, nil
}

func (s *RedisStore) Snapshot(ctx context.Context, conversationID string) ([]Line, bool, error) {
	return s.load(ctx, conversationID)
}

func (s *RedisStore) Clear(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, cartKey(conversationID)).Err()
}

func (s *RedisStore) load(ctx context.Context, conversationID string) ([]Line, bool, error) {
	raw, err := s.client.Get(ctx, cartKey(conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load cart: %w", err)
	}
	var cart []Line
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, false, fmt.Errorf("decode cart: %w", err)
	}
	return cart, true, nil
}

func (s *RedisStore) save(ctx context.Context, conversationID string, cart []Line) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(conversationID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	prefKeyPrefix     = "prefs:"       // Value storage: prefs:{key}
	prefChannelPrefix = "prefs:watch:" // Pub/Sub channel per key: prefs:watch:{key}
)

// RedisStore is the Redis-backed Store implementation. Set publishes the new
// value on a per-key channel so other processes observe the change.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, prefKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, prefKeyPrefix+key, value, 0)
	pipe.Publish(ctx, prefChannelPrefix+key, value)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Subscribe(ctx context.Context, key string) (<-chan string, func(), error) {
	sub := s.client.Subscribe(ctx, prefChannelPrefix+key)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", key, err)
	}

	ch := make(chan string, 1)
	done := make(chan struct{})

	go func() {
		defer close(ch)
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case ch <- msg.Payload:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	cancel := func() {
		close(done)
		_ = sub.Close()
	}
	return ch, cancel, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
)

const (
	cardKeyPrefix    = "portfolio:card:"  // Card document JSON: portfolio:card:{id}
	cardSetKey       = "portfolio:cards"  // Set of all card IDs
	cardEventChannel = "portfolio:events" // Pub/Sub channel notified after every write
)

// RedisStore implements CardStore on Redis: one JSON document per card, a set
// of IDs for enumeration and a pub/sub channel for change notification. Used
// as the local-dev backend and throughout the test suite via miniredis.
type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

var _ CardStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, log *zap.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (s *RedisStore) List(ctx context.Context) ([]domain.Card, error) {
	ids, err := s.client.SMembers(ctx, cardSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list card ids: %w", err)
	}

	cards := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		data, err := s.client.Get(ctx, cardKey(id)).Result()
		if err == redis.Nil {
			// ID left in the set after a partial delete; skip it.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get card %s: %w", id, err)
		}

		var card domain.Card
		if err := json.Unmarshal([]byte(data), &card); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card %s: %w", id, err)
		}
		card.ID = id
		cards = append(cards, card)
	}
	return cards, nil
}

func (s *RedisStore) Add(ctx context.Context, card domain.Card) (string, error) {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}

	data, err := json.Marshal(card)
	if err != nil {
		return "", fmt.Errorf("failed to marshal card: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, cardKey(card.ID), data, 0)
	pipe.SAdd(ctx, cardSetKey, card.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to add card: %w", err)
	}

	s.publish(ctx)
	return card.ID, nil
}

func (s *RedisStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	data, err := s.client.Get(ctx, cardKey(id)).Result()
	if err == redis.Nil {
		return domain.ErrCardNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get card %s: %w", id, err)
	}

	// Overlay the changed fields on the raw document so untouched fields
	// survive regardless of shape.
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return fmt.Errorf("failed to unmarshal card %s: %w", id, err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	updated, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal card %s: %w", id, err)
	}
	if err := s.client.Set(ctx, cardKey(id), updated, 0).Err(); err != nil {
		return fmt.Errorf("failed to update card %s: %w", id, err)
	}

	s.publish(ctx)
	return nil
}

func (s *RedisStore) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	return s.UpdateFields(ctx, id, map[string]interface{}{"sortOrder": sortOrder})
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, cardKey(id))
	pipe.SRem(ctx, cardSetKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}

	s.publish(ctx)
	return nil
}

// Watch subscribes to the change channel and re-reads the full collection on
// every notification, mirroring the full-snapshot delivery the Firestore
// listener provides.
func (s *RedisStore) Watch(ctx context.Context) (<-chan []domain.Card, error) {
	sub := s.client.Subscribe(ctx, cardEventChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to card events: %w", err)
	}

	ch := make(chan []domain.Card, 1)

	go func() {
		defer close(ch)
		defer func() { _ = sub.Close() }()

		// Initial snapshot before any event arrives.
		if cards, err := s.List(ctx); err == nil {
			select {
			case ch <- cards:
			case <-ctx.Done():
				return
			}
		} else {
			s.log.Error("failed to load initial card set", zap.Error(err))
		}

		events := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				cards, err := s.List(ctx)
				if err != nil {
					s.log.Error("failed to reload card set", zap.Error(err))
					continue
				}
				select {
				case ch <- cards:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func (s *RedisStore) publish(ctx context.Context) {
	if err := s.client.Publish(ctx, cardEventChannel, "changed").Err(); err != nil {
		s.log.Warn("failed to publish card event", zap.Error(err))
	}
}

func cardKey(id string) string {
	return fmt.Sprintf("%s%s", cardKeyPrefix, id)
}

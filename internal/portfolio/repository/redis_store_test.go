package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
	"github.com/plussdev/portfolio-backend/internal/portfolio/repository"
)

func newStore(t *testing.T) (*repository.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewRedisStore(client, zap.NewNop()), mr
}

func sampleCard(title string, order int) domain.Card {
	return domain.Card{
		Title:       title,
		Description: "desc",
		Category:    "Web",
		Image:       "https://img.example/x.png",
		Techs:       []string{"Go"},
		SortOrder:   order,
	}
}

func TestRedisStoreAddAndList(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, sampleCard("One", 0))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = store.Add(ctx, sampleCard("Two", 1))
	require.NoError(t, err)

	cards, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	domain.SortCards(cards)
	assert.Equal(t, "One", cards[0].Title)
	assert.Equal(t, id, cards[0].ID)
	assert.Equal(t, []string{"Go"}, cards[0].Techs)
}

func TestRedisStoreUpdateFields(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, sampleCard("Before", 3))
	require.NoError(t, err)

	err = store.UpdateFields(ctx, id, map[string]interface{}{
		"title": "After",
		"techs": []string{"Go", "Redis"},
	})
	require.NoError(t, err)

	cards, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "After", cards[0].Title)
	assert.Equal(t, []string{"Go", "Redis"}, cards[0].Techs)
	assert.Equal(t, 3, cards[0].SortOrder, "untouched fields survive the overlay")
}

func TestRedisStoreUpdateFieldsUnknownCard(t *testing.T) {
	store, _ := newStore(t)
	err := store.UpdateFields(context.Background(), "nope", map[string]interface{}{"title": "X"})
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestRedisStoreUpdateSortOrder(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, sampleCard("Card", 0))
	require.NoError(t, err)

	require.NoError(t, store.UpdateSortOrder(ctx, id, 7))

	cards, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 7, cards[0].SortOrder)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, sampleCard("Gone", 0))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	cards, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestRedisStoreListSkipsStrayIDs(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, sampleCard("Kept", 0))
	require.NoError(t, err)

	// Simulate a partial delete: the document is gone, the set entry stays.
	_, err = mr.SetAdd("portfolio:cards", "orphan")
	require.NoError(t, err)

	cards, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Kept", cards[0].Title)
}

func TestRedisStoreWatchDeliversSnapshots(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := store.Add(ctx, sampleCard("Seed", 0))
	require.NoError(t, err)

	ch, err := store.Watch(ctx)
	require.NoError(t, err)

	// Initial snapshot arrives without any write.
	select {
	case cards := <-ch:
		require.Len(t, cards, 1)
		assert.Equal(t, "Seed", cards[0].Title)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot")
	}

	_, err = store.Add(ctx, sampleCard("Next", 1))
	require.NoError(t, err)

	select {
	case cards := <-ch:
		assert.Len(t, cards, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after write")
	}

	cancel()
	select {
	case _, open := <-ch:
		assert.False(t, open, "channel closes when the context ends")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

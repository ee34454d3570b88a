package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
	"github.com/plussdev/portfolio-backend/internal/portfolio/service"
)

// fakeStore is an in-memory CardStore that records sortOrder writes and can
// fail a chosen write to exercise the partial-failure path.
type fakeStore struct {
	mu     sync.Mutex
	cards  []domain.Card
	writes []service.OrderWrite

	listErr    error
	failWriteN int // 1-based write index to fail, 0 means never
}

func (f *fakeStore) List(ctx context.Context) ([]domain.Card, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Card, len(f.cards))
	copy(out, f.cards)
	return out, nil
}

func (f *fakeStore) Add(ctx context.Context, card domain.Card) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	card.ID = fmt.Sprintf("card-%d", len(f.cards)+1)
	f.cards = append(f.cards, card)
	return card.ID, nil
}

func (f *fakeStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cards {
		if f.cards[i].ID == id {
			if title, ok := fields["title"].(string); ok {
				f.cards[i].Title = title
			}
			return nil
		}
	}
	return domain.ErrCardNotFound
}

func (f *fakeStore) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWriteN > 0 && len(f.writes)+1 == f.failWriteN {
		return errors.New("write rejected")
	}
	f.writes = append(f.writes, service.OrderWrite{ID: id, SortOrder: sortOrder})
	for i := range f.cards {
		if f.cards[i].ID == id {
			f.cards[i].SortOrder = sortOrder
			return nil
		}
	}
	return domain.ErrCardNotFound
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cards {
		if f.cards[i].ID == id {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			return nil
		}
	}
	return domain.ErrCardNotFound
}

func (f *fakeStore) Watch(ctx context.Context) (<-chan []domain.Card, error) {
	ch := make(chan []domain.Card)
	close(ch)
	return ch, nil
}

func seq(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range cards {
		cards[i] = domain.Card{ID: fmt.Sprintf("card-%d", i+1), SortOrder: i}
	}
	return cards
}

func TestPlanReorderNoMoveNoWrites(t *testing.T) {
	writes, err := service.PlanReorder(seq(5), 2, 2)
	require.NoError(t, err)
	assert.Empty(t, writes)
}

func TestPlanReorderFullSpanMoves(t *testing.T) {
	n := 6

	writes, err := service.PlanReorder(seq(n), 0, n-1)
	require.NoError(t, err)
	assert.Len(t, writes, n, "moving across the whole list renumbers every card")

	writes, err = service.PlanReorder(seq(n), n-1, 0)
	require.NoError(t, err)
	assert.Len(t, writes, n)
}

func TestPlanReorderAdjacentSwap(t *testing.T) {
	writes, err := service.PlanReorder(seq(5), 1, 2)
	require.NoError(t, err)
	require.Len(t, writes, 2)
	assert.Contains(t, writes, service.OrderWrite{ID: "card-2", SortOrder: 2})
	assert.Contains(t, writes, service.OrderWrite{ID: "card-3", SortOrder: 1})
}

func TestPlanReorderResultIsPermutation(t *testing.T) {
	cards := seq(7)
	writes, err := service.PlanReorder(cards, 5, 1)
	require.NoError(t, err)

	final := map[string]int{}
	for _, c := range cards {
		final[c.ID] = c.SortOrder
	}
	for _, w := range writes {
		final[w.ID] = w.SortOrder
	}

	seen := make([]bool, len(cards))
	for _, pos := range final {
		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, len(cards))
		assert.False(t, seen[pos], "position %d assigned twice", pos)
		seen[pos] = true
	}
}

func TestPlanReorderOnlyChangedValuesWritten(t *testing.T) {
	cards := seq(6)
	writes, err := service.PlanReorder(cards, 1, 3)
	require.NoError(t, err)

	// Cards at 0, 4, 5 keep their positions and must not appear.
	for _, w := range writes {
		assert.NotEqual(t, "card-1", w.ID)
		assert.NotEqual(t, "card-5", w.ID)
		assert.NotEqual(t, "card-6", w.ID)
	}
	assert.Len(t, writes, 3)
}

func TestPlanReorderIndexOutOfRange(t *testing.T) {
	cards := seq(3)

	for _, tc := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		_, err := service.PlanReorder(cards, tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange, "from=%d to=%d", tc[0], tc[1])
	}

	_, err := service.PlanReorder(nil, 0, 0)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestReordererAppliesWritesSequentially(t *testing.T) {
	store := &fakeStore{cards: seq(4)}
	r := service.NewReorderer(store, zap.NewNop())

	applied, err := r.Reorder(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, applied)

	// Every write lands exactly the position the final order dictates.
	cards, err := store.List(context.Background())
	require.NoError(t, err)
	domain.SortCards(cards)
	assert.Equal(t, []string{"card-2", "card-3", "card-4", "card-1"}, ids(cards))
}

func TestReordererPartialFailureKeepsAppliedCount(t *testing.T) {
	store := &fakeStore{cards: seq(5), failWriteN: 3}
	r := service.NewReorderer(store, zap.NewNop())

	applied, err := r.Reorder(context.Background(), 0, 4)
	require.Error(t, err)
	assert.Equal(t, 2, applied, "writes before the failure stay committed")
	assert.Len(t, store.writes, 2)
}

func TestReordererRejectsOverlappingReorder(t *testing.T) {
	store := &blockingStore{
		fakeStore: &fakeStore{cards: seq(3)},
		release:   make(chan struct{}),
		listing:   make(chan struct{}, 1),
	}
	r := service.NewReorderer(store, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := r.Reorder(context.Background(), 0, 2)
		done <- err
	}()

	<-store.listing

	_, err := r.Reorder(context.Background(), 0, 1)
	assert.ErrorIs(t, err, domain.ErrReorderInFlight)

	close(store.release)
	require.NoError(t, <-done)

	// Lock released: a follow-up reorder goes through.
	_, err = r.Reorder(context.Background(), 0, 0)
	assert.NoError(t, err)
}

func TestReordererPropagatesListFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("backend down")}
	r := service.NewReorderer(store, zap.NewNop())

	applied, err := r.Reorder(context.Background(), 0, 1)
	assert.Error(t, err)
	assert.Zero(t, applied)
}

// blockingStore parks List until released so a second reorder can be attempted
// while the first one holds the lock.
type blockingStore struct {
	*fakeStore
	release chan struct{}
	listing chan struct{}
}

func (b *blockingStore) List(ctx context.Context) ([]domain.Card, error) {
	select {
	case b.listing <- struct{}{}:
	default:
	}
	<-b.release
	return b.fakeStore.List(ctx)
}

func ids(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

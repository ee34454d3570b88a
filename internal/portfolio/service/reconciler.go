package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
	"github.com/plussdev/portfolio-backend/internal/portfolio/repository"
)

// OrderWrite is one pending sortOrder persistence write.
type OrderWrite struct {
	ID        string
	SortOrder int
}

// PlanReorder translates "move the item at position from to position to" into
// the minimal set of sortOrder writes that makes ascending-sortOrder traversal
// match the requested order. The input must already be sorted ascending by
// sortOrder (ties by id); after the writes settle the committed values form a
// permutation of 0..N-1.
func PlanReorder(cards []domain.Card, from, to int) ([]OrderWrite, error) {
	n := len(cards)
	if from < 0 || from >= n {
		return nil, fmt.Errorf("%w: source %d, list size %d", domain.ErrIndexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return nil, fmt.Errorf("%w: target %d, list size %d", domain.ErrIndexOutOfRange, to, n)
	}
	if from == to {
		return nil, nil
	}

	reordered := make([]domain.Card, 0, n)
	reordered = append(reordered, cards[:from]...)
	reordered = append(reordered, cards[from+1:]...)
	reordered = append(reordered[:to], append([]domain.Card{cards[from]}, reordered[to:]...)...)

	var writes []OrderWrite
	for pos, card := range reordered {
		if card.SortOrder != pos {
			writes = append(writes, OrderWrite{ID: card.ID, SortOrder: pos})
		}
	}
	return writes, nil
}

// Reorderer issues the planned writes sequentially against the store. A small
// Idle -> Reordering -> Idle state machine rejects overlapping reorders so two
// write sequences never race each other; the original site held no such lock.
type Reorderer struct {
	store repository.CardStore
	log   *zap.Logger

	mu         sync.Mutex
	reordering bool
}

func NewReorderer(store repository.CardStore, log *zap.Logger) *Reorderer {
	return &Reorderer{store: store, log: log}
}

// Reorder moves the card at position from to position to and persists the new
// sequential order. It returns the number of writes applied. A mid-sequence
// write failure stops the loop and leaves the collection partially renumbered;
// there is no rollback, the next successful reorder re-contiguates.
func (r *Reorderer) Reorder(ctx context.Context, from, to int) (int, error) {
	if !r.begin() {
		return 0, domain.ErrReorderInFlight
	}
	defer r.end()

	cards, err := r.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load cards for reorder: %w", err)
	}
	domain.SortCards(cards)

	writes, err := PlanReorder(cards, from, to)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, w := range writes {
		if err := r.store.UpdateSortOrder(ctx, w.ID, w.SortOrder); err != nil {
			r.log.Error("reorder write failed",
				zap.String("card_id", w.ID),
				zap.Int("sort_order", w.SortOrder),
				zap.Int("applied", applied),
				zap.Int("planned", len(writes)),
				zap.Error(err))
			return applied, fmt.Errorf("reorder write %d/%d failed: %w", applied+1, len(writes), err)
		}
		applied++
	}

	return applied, nil
}

func (r *Reorderer) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reordering {
		return false
	}
	r.reordering = true
	return true
}

func (r *Reorderer) end() {
	r.mu.Lock()
	r.reordering = false
	r.mu.Unlock()
}

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
	"github.com/plussdev/portfolio-backend/internal/portfolio/repository"
)

// Mirror keeps an always-fresh local snapshot of the card collection and
// fans every delivered set out to stream subscribers. Each delivery replaces
// the whole snapshot; there is no diffing against the previous one.
//
// The mirror fails open: if the subscription cannot be established or dies,
// the snapshot becomes empty and the error is logged, never surfaced. A broken
// portfolio section is less damaging than a crashed page.
type Mirror struct {
	store repository.CardStore
	log   *zap.Logger
	retry time.Duration

	mu      sync.RWMutex
	cards   []domain.Card
	subs    map[int]chan []domain.Card
	nextSub int
}

func NewMirror(store repository.CardStore, log *zap.Logger) *Mirror {
	return &Mirror{
		store: store,
		log:   log,
		retry: 5 * time.Second,
		subs:  make(map[int]chan []domain.Card),
	}
}

// Run consumes the store's watch stream until ctx is cancelled, replacing the
// snapshot on every delivery and re-subscribing with backoff after failures.
func (m *Mirror) Run(ctx context.Context) {
	for {
		ch, err := m.store.Watch(ctx)
		if err != nil {
			m.replace(nil)
			if errors.Is(err, domain.ErrNotConfigured) {
				// Nothing to watch; stay empty without retry noise.
				return
			}
			m.log.Error("portfolio subscription failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(m.retry):
				continue
			}
		}

		for cards := range ch {
			domain.SortCards(cards)
			m.replace(cards)
		}

		if ctx.Err() != nil {
			return
		}

		// Stream closed unexpectedly; degrade to empty and re-subscribe.
		m.replace(nil)
		m.log.Warn("portfolio subscription closed, retrying")
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.retry):
		}
	}
}

// Cards returns a copy of the current snapshot, sorted for display.
func (m *Mirror) Cards() []domain.Card {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Card, len(m.cards))
	copy(out, m.cards)
	return out
}

// Subscribe registers a stream consumer. The returned channel carries the
// full card set after every change, starting with the current snapshot. The
// cancel func releases the subscription.
func (m *Mirror) Subscribe() (<-chan []domain.Card, func()) {
	ch := make(chan []domain.Card, 1)

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	snapshot := make([]domain.Card, len(m.cards))
	copy(snapshot, m.cards)
	m.mu.Unlock()

	ch <- snapshot

	cancel := func() {
		m.mu.Lock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
		m.mu.Unlock()
	}
	return ch, cancel
}

func (m *Mirror) replace(cards []domain.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cards = cards
	for _, sub := range m.subs {
		// A slow consumer only ever sees the freshest set: drop the stale
		// pending delivery before pushing the new one.
		select {
		case <-sub:
		default:
		}
		select {
		case sub <- cards:
		default:
		}
	}
}

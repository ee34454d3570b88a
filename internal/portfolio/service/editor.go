package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
	"github.com/plussdev/portfolio-backend/internal/portfolio/repository"
)

// Editor performs the admin form's create/update/delete operations against
// the card store. Last writer wins; there is no version check.
type Editor struct {
	store repository.CardStore
	log   *zap.Logger
}

func NewEditor(store repository.CardStore, log *zap.Logger) *Editor {
	return &Editor{store: store, log: log}
}

// List returns all cards sorted for display.
func (e *Editor) List(ctx context.Context) ([]domain.Card, error) {
	cards, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortCards(cards)
	return cards, nil
}

// Create validates the form and appends a new card with sortOrder equal to
// the current record count.
func (e *Editor) Create(ctx context.Context, form domain.CardForm) (domain.Card, error) {
	if err := form.Validate(); err != nil {
		return domain.Card{}, err
	}

	existing, err := e.store.List(ctx)
	if err != nil {
		return domain.Card{}, fmt.Errorf("failed to count cards: %w", err)
	}

	card := form.Card()
	card.SortOrder = len(existing)

	id, err := e.store.Add(ctx, card)
	if err != nil {
		return domain.Card{}, err
	}
	card.ID = id

	e.log.Info("card created", zap.String("card_id", id), zap.Int("sort_order", card.SortOrder))
	return card, nil
}

// Update overwrites the record's form fields. SortOrder is never touched here;
// only the reorderer writes it.
func (e *Editor) Update(ctx context.Context, id string, form domain.CardForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if err := e.store.UpdateFields(ctx, id, form.Fields()); err != nil {
		return err
	}
	e.log.Info("card updated", zap.String("card_id", id))
	return nil
}

// Delete removes the record. Remaining cards are not renumbered; a gap in
// sortOrder is acceptable because display only depends on relative order.
func (e *Editor) Delete(ctx context.Context, id string) error {
	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}
	e.log.Info("card deleted", zap.String("card_id", id))
	return nil
}

package repository

import (
	"context"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
)

// CardStore is the document-collection contract the portfolio services run
// against. Production uses Firestore; local development and tests use Redis.
//
// Watch delivers the complete current card set after every acknowledged
// change, never a diff. The channel closes when ctx is cancelled or the
// subscription fails; callers treat a close as "re-subscribe or go empty".
type CardStore interface {
	List(ctx context.Context) ([]domain.Card, error)
	Add(ctx context.Context, card domain.Card) (string, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateSortOrder(ctx context.Context, id string, sortOrder int) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context) (<-chan []domain.Card, error)
}

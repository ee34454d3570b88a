package repository

import (
	"context"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
)

// Disabled is the CardStore used when no backend credentials were supplied.
// Every operation fails with ErrNotConfigured up front instead of attempting
// a call, so the UI can show a static "not configured" message.
type Disabled struct{}

var _ CardStore = Disabled{}

func (Disabled) List(context.Context) ([]domain.Card, error) {
	return nil, domain.ErrNotConfigured
}

func (Disabled) Add(context.Context, domain.Card) (string, error) {
	return "", domain.ErrNotConfigured
}

func (Disabled) UpdateFields(context.Context, string, map[string]interface{}) error {
	return domain.ErrNotConfigured
}

func (Disabled) UpdateSortOrder(context.Context, string, int) error {
	return domain.ErrNotConfigured
}

func (Disabled) Delete(context.Context, string) error {
	return domain.ErrNotConfigured
}

func (Disabled) Watch(context.Context) (<-chan []domain.Card, error) {
	return nil, domain.ErrNotConfigured
}

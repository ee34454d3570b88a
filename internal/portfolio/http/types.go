package http

import "github.com/plussdev/portfolio-backend/internal/portfolio/domain"

// ReorderRequest asks to move the card at visual position From to position To.
type ReorderRequest struct {
	From int `json:"from" binding:"min=0"`
	To   int `json:"to" binding:"min=0"`
}

type ReorderResponse struct {
	Applied int `json:"applied"`
}

type CardListResponse struct {
	Cards []domain.Card `json:"cards"`
}

type LocalizedListResponse struct {
	Language string                 `json:"language"`
	Cards    []domain.LocalizedCard `json:"cards"`
}

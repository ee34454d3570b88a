package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/plussdev/portfolio-backend/internal/portfolio/domain"
)

// FirestoreStore implements CardStore against a Firestore collection. Each
// card is one document; the document ID is the card ID.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	log        *zap.Logger
}

var _ CardStore = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client, collection string, log *zap.Logger) *FirestoreStore {
	return &FirestoreStore{
		client:     client,
		collection: collection,
		log:        log,
	}
}

func (s *FirestoreStore) col() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

func (s *FirestoreStore) List(ctx context.Context) ([]domain.Card, error) {
	docs, err := s.col().Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return docsToCards(docs)
}

func (s *FirestoreStore) Add(ctx context.Context, card domain.Card) (string, error) {
	ref, _, err := s.col().Add(ctx, card)
	if err != nil {
		return "", fmt.Errorf("failed to add card: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	if _, err := s.col().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrCardNotFound
		}
		return fmt.Errorf("failed to update card %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	return s.UpdateFields(ctx, id, map[string]interface{}{"sortOrder": sortOrder})
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}
	return nil
}

// Watch streams the full collection on every server-acknowledged change using
// a Firestore snapshot listener. The channel closes when ctx is cancelled or
// the listener dies; it is up to the mirror to fall back to an empty list.
func (s *FirestoreStore) Watch(ctx context.Context) (<-chan []domain.Card, error) {
	ch := make(chan []domain.Card, 1)

	go func() {
		defer close(ch)

		snaps := s.col().Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					s.log.Error("portfolio snapshot listener failed", zap.Error(err))
				}
				return
			}

			cards, err := snapToCards(snap)
			if err != nil {
				s.log.Error("failed to decode portfolio snapshot", zap.Error(err))
				continue
			}

			select {
			case ch <- cards:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}

func snapToCards(snap *firestore.QuerySnapshot) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, snap.Size)
	for {
		doc, err := snap.Documents.Next()
		if err == iterator.Done {
			return cards, nil
		}
		if err != nil {
			return nil, err
		}
		card, err := docToCard(doc)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
}

func docsToCards(docs []*firestore.DocumentSnapshot) ([]domain.Card, error) {
	cards := make([]domain.Card, 0, len(docs))
	for _, doc := range docs {
		card, err := docToCard(doc)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func docToCard(doc *firestore.DocumentSnapshot) (domain.Card, error) {
	var card domain.Card
	if err := doc.DataTo(&card); err != nil {
		return domain.Card{}, fmt.Errorf("failed to decode card %s: %w", doc.Ref.ID, err)
	}
	card.ID = doc.Ref.ID
	return card, nil
}

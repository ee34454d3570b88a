package integration

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
	"github.com/plussdev/portfolio-backend/internal/portfolio/service"
)

func setupStore(t *testing.T) *repository.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewRedisStore(client, zap.NewNop())
}

func form(title string) domain.CardForm {
	return domain.CardForm{
		Title:       title,
		Description: "desc",
		Image:       "https://img.example/" + title + ".png",
	}
}

func titles(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}

func waitFor(t *testing.T, mirror *service.Mirror, want []string) {
	t.Helper()
	require.Eventually(t, func() bool {
		cards := mirror.Cards()
		if len(cards) != len(want) {
			return false
		}
		for i, title := range titles(cards) {
			if title != want[i] {
				return false
			}
		}
		return true
	}, 3*time.Second, 10*time.Millisecond)
}

// The full editing loop: cards created through the editor appear in the
// mirror, a reorder rewrites the sequence and the mirror converges on the new
// order, a delete leaves a gap that display order tolerates.
func TestEditReorderMirrorFlow(t *testing.T) {
	store := setupStore(t)
	log := zap.NewNop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mirror := service.NewMirror(store, log)
	go mirror.Run(ctx)

	editor := service.NewEditor(store, log)
	reorderer := service.NewReorderer(store, log)

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := editor.Create(ctx, form(title))
		require.NoError(t, err)
	}
	waitFor(t, mirror, []string{"Alpha", "Beta", "Gamma"})

	// Move the first card to the end.
	applied, err := reorderer.Reorder(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, applied)
	waitFor(t, mirror, []string{"Beta", "Gamma", "Alpha"})

	// Committed sortOrder values form the sequence 0..N-1.
	cards, err := editor.List(ctx)
	require.NoError(t, err)
	for pos, c := range cards {
		assert.Equal(t, pos, c.SortOrder)
	}

	// Delete the middle card; survivors keep their positions.
	require.NoError(t, editor.Delete(ctx, cards[1].ID))
	waitFor(t, mirror, []string{"Beta", "Alpha"})

	cards, err = editor.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, cards[0].SortOrder)
	assert.Equal(t, 2, cards[1].SortOrder)

	// A new card appends after the gap using the record count.
	created, err := editor.Create(ctx, form("Delta"))
	require.NoError(t, err)
	assert.Equal(t, 2, created.SortOrder, "append position is the record count, gaps included")
}

func TestMirrorRecoversAfterReorder(t *testing.T) {
	store := setupStore(t)
	log := zap.NewNop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	editor := service.NewEditor(store, log)
	for _, title := range []string{"One", "Two"} {
		_, err := editor.Create(ctx, form(title))
		require.NoError(t, err)
	}

	// Mirror started after the writes still converges on the stored set.
	mirror := service.NewMirror(store, log)
	go mirror.Run(ctx)
	waitFor(t, mirror, []string{"One", "Two"})

	sub, unsubscribe := mirror.Subscribe()
	defer unsubscribe()
	<-sub // current snapshot

	_, err := service.NewReorderer(store, log).Reorder(ctx, 1, 0)
	require.NoError(t, err)

	// Intermediate snapshots may arrive while the write sequence is still
	// in flight; wait for the final order.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case cards := <-sub:
			if len(cards) == 2 && cards[0].Title == "Two" && cards[1].Title == "One" {
				return
			}
		case <-deadline:
			t.Fatal("stream subscriber never saw the reorder")
		}
	}
}

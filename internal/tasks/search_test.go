package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luquetti/mis18/internal/models"
	tu "github.com/luquetti/mis18/internal/testing"
)

func TestSearchCoordinator(t *testing.T) {
	t.Run("Delivers The Latest Query", func(t *testing.T) {
		release := make(chan struct{})
		stub := &tu.StubSearch{
			Hook: func(ctx context.Context, query string) ([]models.Song, error) {
				if query == "a" {
					<-release
				}
				return []models.Song{{Title: query}}, nil
			},
		}

		coord := NewSearchCoordinator(stub)
		coord.Search(context.Background(), "a")
		coord.Search(context.Background(), "ab")

		select {
		case result := <-coord.Results():
			if result.Query != "ab" {
				t.Errorf("expected the newest query to win, got %q", result.Query)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the winning result")
		}

		// Let the slow first lookup finish; it must be discarded.
		close(release)
		select {
		case result := <-coord.Results():
			t.Errorf("superseded lookup leaked a result: %+v", result)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Delivers Provider Failures", func(t *testing.T) {
		stub := &tu.StubSearch{
			Hook: func(ctx context.Context, query string) ([]models.Song, error) {
				return nil, errors.New("provider down")
			},
		}

		coord := NewSearchCoordinator(stub)
		coord.Search(context.Background(), "yellow")

		select {
		case result := <-coord.Results():
			if result.Err == nil {
				t.Error("expected the provider failure to surface")
			}
			if result.Query != "yellow" {
				t.Errorf("expected the failing query tagged, got %q", result.Query)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for the failure result")
		}
	})

	t.Run("Sequential Queries All Deliver", func(t *testing.T) {
		stub := &tu.StubSearch{
			Hook: func(ctx context.Context, query string) ([]models.Song, error) {
				return []models.Song{{Title: query}}, nil
			},
		}

		coord := NewSearchCoordinator(stub)
		for _, query := range []string{"one", "two", "three"} {
			coord.Search(context.Background(), query)

			select {
			case result := <-coord.Results():
				if result.Query != query {
					t.Errorf("expected %q, got %q", query, result.Query)
				}
			case <-time.After(2 * time.Second):
				t.Fatalf("timed out waiting for %q", query)
			}
		}
	})
}

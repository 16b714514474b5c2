package services

import (
	"context"
	"errors"
	"testing"

	"github.com/als8921/InfoU-backend/internal/apierr"
	"github.com/als8921/InfoU-backend/internal/repos"
)

func newNavigationFixture(t *testing.T) (NavigationService, func(id, item, level string)) {
	t.Helper()
	db := testDB(t)
	log := testLogger(t)
	seedPath(t, db, []int{1, 2, 3})

	svc := NewNavigationService(log, repos.NewArticleRepo(db, log), repos.NewCurriculumItemRepo(db, log))
	addArticle := func(id, item, level string) {
		seedArticle(t, db, id, item, level)
	}
	return svc, addArticle
}

func TestFindAdjacentWalksPathInOrder(t *testing.T) {
	svc, addArticle := newNavigationFixture(t)
	addArticle("a1", "item_1", "beginner")
	addArticle("a2", "item_2", "beginner")
	addArticle("a3", "item_3", "beginner")

	ctx := context.Background()
	var visited []string

	current := "a1"
	for {
		next, err := svc.FindAdjacent(ctx, current, DirectionNext, "")
		if err != nil {
			t.Fatalf("FindAdjacent(%s, next): %v", current, err)
		}
		if next == nil {
			break
		}
		visited = append(visited, next.ID)
		current = next.ID
	}

	want := []string{"a2", "a3"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestFindAdjacentRoundTrip(t *testing.T) {
	svc, addArticle := newNavigationFixture(t)
	addArticle("a1", "item_1", "beginner")
	addArticle("a2", "item_2", "beginner")

	ctx := context.Background()
	next, err := svc.FindAdjacent(ctx, "a1", DirectionNext, "")
	if err != nil || next == nil {
		t.Fatalf("next from a1: article=%v err=%v", next, err)
	}
	prev, err := svc.FindAdjacent(ctx, next.ID, DirectionPrevious, "")
	if err != nil || prev == nil {
		t.Fatalf("previous from %s: article=%v err=%v", next.ID, prev, err)
	}
	if prev.ID != "a1" {
		t.Fatalf("round trip returned %s, want a1", prev.ID)
	}
}

func TestFindAdjacentDoesNotSkipLevelGaps(t *testing.T) {
	// Items 1 and 3 have beginner articles; item 2 does not. The gap is
	// surfaced as absence even though item 3 could satisfy the level.
	svc, addArticle := newNavigationFixture(t)
	addArticle("a1", "item_1", "beginner")
	addArticle("a3", "item_3", "beginner")

	next, err := svc.FindAdjacent(context.Background(), "a1", DirectionNext, "beginner")
	if err != nil {
		t.Fatalf("FindAdjacent: %v", err)
	}
	if next != nil {
		t.Fatalf("expected nil at level gap, got %s", next.ID)
	}
}

func TestFindAdjacentLevelOverride(t *testing.T) {
	svc, addArticle := newNavigationFixture(t)
	addArticle("a1", "item_1", "beginner")
	addArticle("a2b", "item_2", "beginner")
	addArticle("a2i", "item_2", "intermediate")

	next, err := svc.FindAdjacent(context.Background(), "a1", DirectionNext, "intermediate")
	if err != nil {
		t.Fatalf("FindAdjacent: %v", err)
	}
	if next == nil || next.ID != "a2i" {
		t.Fatalf("expected a2i with level override, got %v", next)
	}
}

func TestFindAdjacentBoundaries(t *testing.T) {
	svc, addArticle := newNavigationFixture(t)
	addArticle("a1", "item_1", "beginner")
	addArticle("a3", "item_3", "beginner")

	prev, err := svc.FindAdjacent(context.Background(), "a1", DirectionPrevious, "")
	if err != nil {
		t.Fatalf("FindAdjacent previous: %v", err)
	}
	if prev != nil {
		t.Fatalf("expected nil at start of path, got %s", prev.ID)
	}

	next, err := svc.FindAdjacent(context.Background(), "a3", DirectionNext, "")
	if err != nil {
		t.Fatalf("FindAdjacent next: %v", err)
	}
	if next != nil {
		t.Fatalf("expected nil at end of path, got %s", next.ID)
	}
}

func TestFindAdjacentMissingSourceArticle(t *testing.T) {
	svc, _ := newNavigationFixture(t)

	_, err := svc.FindAdjacent(context.Background(), "missing", DirectionNext, "")
	if err == nil {
		t.Fatal("expected NotFound error for missing source article")
	}
	var aerr *apierr.Error
	if !errors.As(err, &aerr) || aerr.Status != 404 {
		t.Fatalf("expected 404 apierr, got %v", err)
	}
}

func TestFindAdjacentInvalidDirection(t *testing.T) {
	svc, addArticle := newNavigationFixture(t)
	addArticle("a1", "item_1", "beginner")

	_, err := svc.FindAdjacent(context.Background(), "a1", Direction("sideways"), "")
	if err == nil {
		t.Fatal("expected validation error for bad direction")
	}
	var aerr *apierr.Error
	if !errors.As(err, &aerr) || aerr.Status != 400 {
		t.Fatalf("expected 400 apierr, got %v", err)
	}
}

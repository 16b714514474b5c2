package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/als8921/InfoU-backend/internal/repos"
	"github.com/als8921/InfoU-backend/internal/types"
)

func newReadingFixture(t *testing.T) (ReadingService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	log := testLogger(t)
	seedPath(t, db, []int{1, 2, 3})

	svc := NewReadingService(log, repos.NewArticleRepo(db, log), repos.NewArticleReadRepo(db, log))
	return svc, db
}

func TestProgressPercentageFloors(t *testing.T) {
	svc, db := newReadingFixture(t)
	seedArticle(t, db, "a1", "item_1", "beginner")
	seedArticle(t, db, "a2", "item_2", "beginner")
	seedArticle(t, db, "a3", "item_3", "beginner")

	ctx := context.Background()
	if _, err := svc.MarkRead(ctx, "u1", "a1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	summary, err := svc.Progress(ctx, "u1", nil)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if summary.TotalArticles != 3 || summary.ReadArticles != 1 {
		t.Fatalf("counts = %d/%d, want 1/3", summary.ReadArticles, summary.TotalArticles)
	}
	// 1/3 floors to 33, never rounds to 34.
	if summary.ProgressPercentage != 33 {
		t.Fatalf("percentage = %d, want 33", summary.ProgressPercentage)
	}
}

func TestProgressEmptyUniverse(t *testing.T) {
	svc, _ := newReadingFixture(t)

	summary, err := svc.Progress(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if summary.TotalArticles != 0 || summary.ReadArticles != 0 || summary.ProgressPercentage != 0 {
		t.Fatalf("empty universe summary = %+v", summary)
	}
	if summary.NextArticle != nil {
		t.Fatalf("expected nil next article, got %s", summary.NextArticle.ID)
	}
}

func TestProgressNextUnreadAscendingID(t *testing.T) {
	svc, db := newReadingFixture(t)
	seedArticle(t, db, "a1", "item_1", "beginner")
	seedArticle(t, db, "a2", "item_2", "beginner")
	seedArticle(t, db, "a3", "item_3", "beginner")

	ctx := context.Background()
	if _, err := svc.MarkRead(ctx, "u1", "a1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	summary, err := svc.Progress(ctx, "u1", nil)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if summary.NextArticle == nil || summary.NextArticle.ID != "a2" {
		t.Fatalf("next article = %v, want a2", summary.NextArticle)
	}

	if _, err := svc.MarkRead(ctx, "u1", "a2"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if _, err := svc.MarkRead(ctx, "u1", "a3"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	summary, err = svc.Progress(ctx, "u1", nil)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if summary.NextArticle != nil {
		t.Fatalf("expected nil next article after reading everything, got %s", summary.NextArticle.ID)
	}
	if summary.ProgressPercentage != 100 {
		t.Fatalf("percentage = %d, want 100", summary.ProgressPercentage)
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	svc, db := newReadingFixture(t)
	seedArticle(t, db, "a1", "item_1", "beginner")

	ctx := context.Background()
	first, err := svc.MarkRead(ctx, "u1", "a1")
	if err != nil {
		t.Fatalf("first MarkRead: %v", err)
	}
	second, err := svc.MarkRead(ctx, "u1", "a1")
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}

	var count int64
	if err := db.Model(&types.ArticleRead{}).Where("user_id = ?", "u1").Count(&count).Error; err != nil {
		t.Fatalf("count reads: %v", err)
	}
	if count != 1 {
		t.Fatalf("read rows = %d, want 1", count)
	}
	if second.ReadAt.Before(first.ReadAt) {
		t.Fatalf("second read_at %v precedes first %v", second.ReadAt, first.ReadAt)
	}
}

func TestMarkReadMissingArticle(t *testing.T) {
	svc, _ := newReadingFixture(t)

	if _, err := svc.MarkRead(context.Background(), "u1", "missing"); err == nil {
		t.Fatal("expected error for missing article")
	}
}

func TestProgressScopedToSubTopic(t *testing.T) {
	svc, db := newReadingFixture(t)
	seedArticle(t, db, "a1", "item_1", "beginner")
	seedArticle(t, db, "a2", "item_2", "beginner")

	// A second sub topic with its own article keeps the global and scoped
	// universes distinct.
	if err := db.Create(&types.SubTopic{ID: 2, MainTopicID: 1, Name: "Rust", SourceType: types.SubTopicSourceCurated}).Error; err != nil {
		t.Fatalf("seed sub topic: %v", err)
	}
	other := &types.Article{ID: "b1", SubTopicID: 2, LevelCode: "beginner", Title: "other", Body: "body"}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed article: %v", err)
	}

	ctx := context.Background()
	if _, err := svc.MarkRead(ctx, "u1", "a1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if _, err := svc.MarkRead(ctx, "u1", "b1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	scope := 1
	scoped, err := svc.Progress(ctx, "u1", &scope)
	if err != nil {
		t.Fatalf("scoped Progress: %v", err)
	}
	if scoped.TotalArticles != 2 || scoped.ReadArticles != 1 || scoped.ProgressPercentage != 50 {
		t.Fatalf("scoped summary = %+v", scoped)
	}
	if scoped.NextArticle == nil || scoped.NextArticle.ID != "a2" {
		t.Fatalf("scoped next = %v, want a2", scoped.NextArticle)
	}

	global, err := svc.Progress(ctx, "u1", nil)
	if err != nil {
		t.Fatalf("global Progress: %v", err)
	}
	if global.TotalArticles != 3 || global.ReadArticles != 2 {
		t.Fatalf("global summary = %+v", global)
	}
}

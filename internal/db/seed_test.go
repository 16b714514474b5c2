package db

import (
	"context"
	"testing"

	"github.com/als8921/InfoU-backend/internal/logger"
	"github.com/als8921/InfoU-backend/internal/repos"
	"github.com/als8921/InfoU-backend/internal/types"
)

func testStore(t *testing.T) *StoreService {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	store, err := NewStoreService(log)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	if err := store.AutoMigrateAll(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func TestSeedLevelsIdempotent(t *testing.T) {
	store := testStore(t)
	log, _ := logger.New("development")
	levelRepo := repos.NewLevelRepo(store.DB(), log)
	ctx := context.Background()

	if err := store.SeedLevels(ctx, levelRepo); err != nil {
		t.Fatalf("SeedLevels: %v", err)
	}
	if err := store.SeedLevels(ctx, levelRepo); err != nil {
		t.Fatalf("second SeedLevels: %v", err)
	}

	levels, err := levelRepo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(levels) != 5 {
		t.Fatalf("levels = %d, want 5", len(levels))
	}
	if levels[0].Code != "absolute_beginner" || levels[4].Code != "expert" {
		t.Fatalf("level ordering off: first=%s last=%s", levels[0].Code, levels[4].Code)
	}
}

func TestSeedSampleTopics(t *testing.T) {
	store := testStore(t)
	log, _ := logger.New("development")
	levelRepo := repos.NewLevelRepo(store.DB(), log)
	mainTopicRepo := repos.NewMainTopicRepo(store.DB(), log)
	curatedRepo := repos.NewCuratedSubTopicRepo(store.DB(), log)
	ctx := context.Background()

	if err := store.SeedLevels(ctx, levelRepo); err != nil {
		t.Fatalf("SeedLevels: %v", err)
	}
	if err := store.SeedSampleTopics(ctx, mainTopicRepo, curatedRepo, levelRepo); err != nil {
		t.Fatalf("SeedSampleTopics: %v", err)
	}
	if err := store.SeedSampleTopics(ctx, mainTopicRepo, curatedRepo, levelRepo); err != nil {
		t.Fatalf("second SeedSampleTopics: %v", err)
	}

	topics, err := mainTopicRepo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List main topics: %v", err)
	}
	if len(topics) != 8 {
		t.Fatalf("main topics = %d, want 8", len(topics))
	}

	var count int64
	if err := store.DB().Model(&types.CuratedSubTopic{}).Count(&count).Error; err != nil {
		t.Fatalf("count curated: %v", err)
	}
	if count != 9 {
		t.Fatalf("curated sub topics = %d, want 9", count)
	}

	curated, err := curatedRepo.ListActive(ctx, nil, repos.CuratedSubTopicFilter{})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, c := range curated {
		if c.LevelID == 0 {
			t.Fatalf("curated %q missing level", c.Title)
		}
		if c.MainTopicID == 0 {
			t.Fatalf("curated %q missing main topic", c.Title)
		}
	}
}

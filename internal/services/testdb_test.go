package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/als8921/InfoU-backend/internal/logger"
	"github.com/als8921/InfoU-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection so every query sees the same in-memory database.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.Level{},
		&types.MainTopic{},
		&types.SubTopic{},
		&types.LearningPath{},
		&types.CurriculumItem{},
		&types.Article{},
		&types.ArticleRead{},
		&types.CuratedSubTopic{},
		&types.GenerationRequest{},
		&types.GeneratedSubTopic{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedPath creates a main topic, sub topic and learning path with
// curriculum items at the given sort orders. Item ids are item_<order>.
func seedPath(t *testing.T, db *gorm.DB, sortOrders []int) {
	t.Helper()
	if err := db.Create(&types.MainTopic{ID: 1, Name: "Programming"}).Error; err != nil {
		t.Fatalf("seed main topic: %v", err)
	}
	if err := db.Create(&types.SubTopic{ID: 1, MainTopicID: 1, Name: "Go", SourceType: types.SubTopicSourceCurated}).Error; err != nil {
		t.Fatalf("seed sub topic: %v", err)
	}
	if err := db.Create(&types.LearningPath{ID: "path_1", SubTopicID: 1, Title: "Go basics", IsDefault: true}).Error; err != nil {
		t.Fatalf("seed path: %v", err)
	}
	for _, order := range sortOrders {
		item := &types.CurriculumItem{
			ID:         itemID(order),
			SubTopicID: 1,
			PathID:     "path_1",
			Title:      "step",
			SortOrder:  order,
		}
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("seed item %d: %v", order, err)
		}
	}
}

func itemID(order int) string {
	return fmt.Sprintf("item_%d", order)
}

func seedArticle(t *testing.T, db *gorm.DB, id, curriculumItemID, levelCode string) {
	t.Helper()
	article := &types.Article{
		ID:               id,
		CurriculumItemID: curriculumItemID,
		SubTopicID:       1,
		LevelCode:        levelCode,
		Title:            "article " + id,
		Body:             "body",
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("seed article %s: %v", id, err)
	}
}

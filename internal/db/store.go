package db

import (
  "fmt"
  "strings"

  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
  "github.com/als8921/InfoU-backend/internal/utils"
)

type StoreService struct {
  db  *gorm.DB
  log *logger.Logger
}

// NewStoreService opens the relational store. DB_DRIVER selects postgres
// (production) or sqlite (local development and tests).
func NewStoreService(log *logger.Logger) (*StoreService, error) {
  serviceLog := log.With("service", "StoreService")

  driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "sqlite", log))

  var dialector gorm.Dialector
  switch driver {
  case "postgres":
    host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
    port := utils.GetEnv("POSTGRES_PORT", "5432", log)
    user := utils.GetEnv("POSTGRES_USER", "postgres", log)
    password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
    name := utils.GetEnv("POSTGRES_NAME", "infou", log)
    dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
    dialector = postgres.Open(dsn)
  case "sqlite":
    path := utils.GetEnv("SQLITE_PATH", "./data/infou.db", log)
    dialector = sqlite.Open(path)
  default:
    return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
  }

  log.Info("Connecting to store...", "driver", driver)
  gormDB, err := gorm.Open(dialector, &gorm.Config{})
  if err != nil {
    return nil, fmt.Errorf("failed to connect to store: %w", err)
  }

  if driver == "sqlite" {
    // WAL keeps readers unblocked while the bounded writer works.
    if err := gormDB.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
      serviceLog.Warn("Could not enable WAL journal mode", "error", err)
    }
    if sqlDB, err := gormDB.DB(); err == nil {
      sqlDB.SetMaxOpenConns(1)
    }
  }

  return &StoreService{db: gormDB, log: serviceLog}, nil
}

func (s *StoreService) AutoMigrateAll() error {
  s.log.Info("Auto migrating store tables...")
  return s.db.AutoMigrate(
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
  )
}

func (s *StoreService) DB() *gorm.DB {
  return s.db
}

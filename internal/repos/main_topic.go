package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type MainTopicRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]*types.MainTopic, error)
  GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.MainTopic, error)
  Create(ctx context.Context, tx *gorm.DB, rows []*types.MainTopic) ([]*types.MainTopic, error)
}

type mainTopicRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMainTopicRepo(db *gorm.DB, baseLog *logger.Logger) MainTopicRepo {
  repoLog := baseLog.With("repo", "MainTopicRepo")
  return &mainTopicRepo{db: db, log: repoLog}
}

func (r *mainTopicRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.MainTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.MainTopic
  if err := transaction.WithContext(ctx).
    Order("main_topic_id ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *mainTopicRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.MainTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.MainTopic
  err := transaction.WithContext(ctx).
    Where("main_topic_id = ?", id).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *mainTopicRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.MainTopic) ([]*types.MainTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.MainTopic{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

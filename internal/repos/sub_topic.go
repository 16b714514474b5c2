package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type SubTopicRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.SubTopic, error)
  GetByMainTopicID(ctx context.Context, tx *gorm.DB, mainTopicID int) ([]*types.SubTopic, error)
  Create(ctx context.Context, tx *gorm.DB, rows []*types.SubTopic) ([]*types.SubTopic, error)
}

type subTopicRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSubTopicRepo(db *gorm.DB, baseLog *logger.Logger) SubTopicRepo {
  repoLog := baseLog.With("repo", "SubTopicRepo")
  return &subTopicRepo{db: db, log: repoLog}
}

func (r *subTopicRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.SubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.SubTopic
  err := transaction.WithContext(ctx).
    Where("sub_topic_id = ?", id).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *subTopicRepo) GetByMainTopicID(ctx context.Context, tx *gorm.DB, mainTopicID int) ([]*types.SubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.SubTopic
  if err := transaction.WithContext(ctx).
    Where("main_topic_id = ?", mainTopicID).
    Order("sub_topic_id ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *subTopicRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SubTopic) ([]*types.SubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.SubTopic{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

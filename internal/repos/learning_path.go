package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type LearningPathRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.LearningPath, error)
  GetBySubTopicID(ctx context.Context, tx *gorm.DB, subTopicID int) ([]*types.LearningPath, error)
  Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPath) ([]*types.LearningPath, error)
}

type learningPathRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
  repoLog := baseLog.With("repo", "LearningPathRepo")
  return &learningPathRepo{db: db, log: repoLog}
}

func (r *learningPathRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.LearningPath, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.LearningPath
  err := transaction.WithContext(ctx).
    Where("path_id = ?", id).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *learningPathRepo) GetBySubTopicID(ctx context.Context, tx *gorm.DB, subTopicID int) ([]*types.LearningPath, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LearningPath
  if err := transaction.WithContext(ctx).
    Where("sub_topic_id = ?", subTopicID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *learningPathRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.LearningPath) ([]*types.LearningPath, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.LearningPath{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

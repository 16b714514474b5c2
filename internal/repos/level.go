package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type LevelRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]*types.Level, error)
  GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Level, error)
  Create(ctx context.Context, tx *gorm.DB, rows []*types.Level) ([]*types.Level, error)
  Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type levelRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLevelRepo(db *gorm.DB, baseLog *logger.Logger) LevelRepo {
  repoLog := baseLog.With("repo", "LevelRepo")
  return &levelRepo{db: db, log: repoLog}
}

func (r *levelRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Level, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Level
  if err := transaction.WithContext(ctx).
    Order("sort_order ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *levelRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Level, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Level
  err := transaction.WithContext(ctx).
    Where("code = ?", code).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *levelRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Level) ([]*types.Level, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.Level{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *levelRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Level{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

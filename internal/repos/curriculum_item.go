package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type CurriculumItemRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.CurriculumItem, error)
  GetByPathID(ctx context.Context, tx *gorm.DB, pathID string) ([]*types.CurriculumItem, error)
  CountByPathID(ctx context.Context, tx *gorm.DB, pathID string) (int64, error)
  // NextInPath returns the item with the smallest sort_order strictly
  // greater than sortOrder within the path, or nil at the end of the path.
  NextInPath(ctx context.Context, tx *gorm.DB, pathID string, sortOrder int) (*types.CurriculumItem, error)
  // PrevInPath returns the item with the largest sort_order strictly less
  // than sortOrder within the path, or nil at the start of the path.
  PrevInPath(ctx context.Context, tx *gorm.DB, pathID string, sortOrder int) (*types.CurriculumItem, error)
  Create(ctx context.Context, tx *gorm.DB, rows []*types.CurriculumItem) ([]*types.CurriculumItem, error)
}

type curriculumItemRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCurriculumItemRepo(db *gorm.DB, baseLog *logger.Logger) CurriculumItemRepo {
  repoLog := baseLog.With("repo", "CurriculumItemRepo")
  return &curriculumItemRepo{db: db, log: repoLog}
}

func (r *curriculumItemRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.CurriculumItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.CurriculumItem
  err := transaction.WithContext(ctx).
    Where("curriculum_item_id = ?", id).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *curriculumItemRepo) GetByPathID(ctx context.Context, tx *gorm.DB, pathID string) ([]*types.CurriculumItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.CurriculumItem
  if err := transaction.WithContext(ctx).
    Where("path_id = ?", pathID).
    Order("sort_order ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *curriculumItemRepo) CountByPathID(ctx context.Context, tx *gorm.DB, pathID string) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.CurriculumItem{}).
    Where("path_id = ?", pathID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *curriculumItemRepo) NextInPath(ctx context.Context, tx *gorm.DB, pathID string, sortOrder int) (*types.CurriculumItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.CurriculumItem
  err := transaction.WithContext(ctx).
    Where("path_id = ? AND sort_order > ?", pathID, sortOrder).
    Order("sort_order ASC").
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *curriculumItemRepo) PrevInPath(ctx context.Context, tx *gorm.DB, pathID string, sortOrder int) (*types.CurriculumItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.CurriculumItem
  err := transaction.WithContext(ctx).
    Where("path_id = ? AND sort_order < ?", pathID, sortOrder).
    Order("sort_order DESC").
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *curriculumItemRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.CurriculumItem) ([]*types.CurriculumItem, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.CurriculumItem{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

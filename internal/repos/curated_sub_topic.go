package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type CuratedSubTopicFilter struct {
  MainTopicID *int
  LevelID     *int
  Offset      int
  Limit       int
}

type CuratedSubTopicRepo interface {
  GetActiveByID(ctx context.Context, tx *gorm.DB, id int) (*types.CuratedSubTopic, error)
  ListActive(ctx context.Context, tx *gorm.DB, filter CuratedSubTopicFilter) ([]*types.CuratedSubTopic, error)
  CountActive(ctx context.Context, tx *gorm.DB, filter CuratedSubTopicFilter) (int64, error)
  // ListPopular returns the most popular active rows for a level, by
  // descending popularity score.
  ListPopular(ctx context.Context, tx *gorm.DB, levelID int, limit int) ([]*types.CuratedSubTopic, error)
  Create(ctx context.Context, tx *gorm.DB, rows []*types.CuratedSubTopic) ([]*types.CuratedSubTopic, error)
}

type curatedSubTopicRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCuratedSubTopicRepo(db *gorm.DB, baseLog *logger.Logger) CuratedSubTopicRepo {
  repoLog := baseLog.With("repo", "CuratedSubTopicRepo")
  return &curatedSubTopicRepo{db: db, log: repoLog}
}

func (r *curatedSubTopicRepo) GetActiveByID(ctx context.Context, tx *gorm.DB, id int) (*types.CuratedSubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.CuratedSubTopic
  err := transaction.WithContext(ctx).
    Where("id = ? AND is_active = ?", id, true).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *curatedSubTopicRepo) buildQuery(ctx context.Context, transaction *gorm.DB, filter CuratedSubTopicFilter) *gorm.DB {
  query := transaction.WithContext(ctx).
    Model(&types.CuratedSubTopic{}).
    Where("is_active = ?", true)
  if filter.MainTopicID != nil {
    query = query.Where("main_topic_id = ?", *filter.MainTopicID)
  }
  if filter.LevelID != nil {
    query = query.Where("level_id = ?", *filter.LevelID)
  }
  return query
}

func (r *curatedSubTopicRepo) ListActive(ctx context.Context, tx *gorm.DB, filter CuratedSubTopicFilter) ([]*types.CuratedSubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  query := r.buildQuery(ctx, transaction, filter)
  if filter.Offset > 0 {
    query = query.Offset(filter.Offset)
  }
  if filter.Limit > 0 {
    query = query.Limit(filter.Limit)
  }

  var results []*types.CuratedSubTopic
  if err := query.Order("id ASC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *curatedSubTopicRepo) CountActive(ctx context.Context, tx *gorm.DB, filter CuratedSubTopicFilter) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := r.buildQuery(ctx, transaction, filter).Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *curatedSubTopicRepo) ListPopular(ctx context.Context, tx *gorm.DB, levelID int, limit int) ([]*types.CuratedSubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if limit <= 0 {
    limit = 10
  }

  var results []*types.CuratedSubTopic
  if err := transaction.WithContext(ctx).
    Where("level_id = ? AND is_active = ?", levelID, true).
    Order("popularity_score DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *curatedSubTopicRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.CuratedSubTopic) ([]*types.CuratedSubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.CuratedSubTopic{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

package repos

import (
  "context"
  "errors"
  "time"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type GeneratedSubTopicFilter struct {
  MainTopicID         *int
  GenerationRequestID *int
  Offset              int
  Limit               int
}

// GeneratedSubTopicRepo reads only active rows; soft deleted rows stay in
// the table as generation history. The active predicate lives here so call
// sites cannot forget it.
type GeneratedSubTopicRepo interface {
  Create(ctx context.Context, tx *gorm.DB, rows []*types.GeneratedSubTopic) ([]*types.GeneratedSubTopic, error)
  GetActiveByID(ctx context.Context, tx *gorm.DB, id int) (*types.GeneratedSubTopic, error)
  ListActive(ctx context.Context, tx *gorm.DB, filter GeneratedSubTopicFilter) ([]*types.GeneratedSubTopic, error)
  SoftDeleteByID(ctx context.Context, tx *gorm.DB, id int) (bool, error)
}

type generatedSubTopicRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGeneratedSubTopicRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedSubTopicRepo {
  repoLog := baseLog.With("repo", "GeneratedSubTopicRepo")
  return &generatedSubTopicRepo{db: db, log: repoLog}
}

func (r *generatedSubTopicRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.GeneratedSubTopic) ([]*types.GeneratedSubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.GeneratedSubTopic{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

func (r *generatedSubTopicRepo) GetActiveByID(ctx context.Context, tx *gorm.DB, id int) (*types.GeneratedSubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.GeneratedSubTopic
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

func (r *generatedSubTopicRepo) ListActive(ctx context.Context, tx *gorm.DB, filter GeneratedSubTopicFilter) ([]*types.GeneratedSubTopic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  query := transaction.WithContext(ctx).
    Model(&types.GeneratedSubTopic{}).
    Where("is_active = ?", true)
  if filter.MainTopicID != nil {
    query = query.Where("main_topic_id = ?", *filter.MainTopicID)
  }
  if filter.GenerationRequestID != nil {
    query = query.Where("generation_request_id = ?", *filter.GenerationRequestID)
  }
  if filter.Offset > 0 {
    query = query.Offset(filter.Offset)
  }
  if filter.Limit > 0 {
    query = query.Limit(filter.Limit)
  }

  var results []*types.GeneratedSubTopic
  if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *generatedSubTopicRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, id int) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  result := transaction.WithContext(ctx).
    Model(&types.GeneratedSubTopic{}).
    Where("id = ? AND is_active = ?", id, true).
    Updates(map[string]any{
      "is_active":  false,
      "updated_at": time.Now(),
    })
  if result.Error != nil {
    return false, result.Error
  }
  return result.RowsAffected > 0, nil
}

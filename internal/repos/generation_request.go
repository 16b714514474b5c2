package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type GenerationRequestFilter struct {
  UserID      string
  MainTopicID *int
  Status      string
  Offset      int
  Limit       int
}

type GenerationRequestRepo interface {
  Create(ctx context.Context, tx *gorm.DB, row *types.GenerationRequest) (*types.GenerationRequest, error)
  GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.GenerationRequest, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, id int, fields map[string]any) error
  List(ctx context.Context, tx *gorm.DB, filter GenerationRequestFilter) ([]*types.GenerationRequest, error)
}

type generationRequestRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewGenerationRequestRepo(db *gorm.DB, baseLog *logger.Logger) GenerationRequestRepo {
  repoLog := baseLog.With("repo", "GenerationRequestRepo")
  return &generationRequestRepo{db: db, log: repoLog}
}

func (r *generationRequestRepo) Create(ctx context.Context, tx *gorm.DB, row *types.GenerationRequest) (*types.GenerationRequest, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil, nil
  }

  if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
    return nil, err
  }
  return row, nil
}

func (r *generationRequestRepo) GetByID(ctx context.Context, tx *gorm.DB, id int) (*types.GenerationRequest, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.GenerationRequest
  err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *generationRequestRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id int, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.GenerationRequest{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (r *generationRequestRepo) List(ctx context.Context, tx *gorm.DB, filter GenerationRequestFilter) ([]*types.GenerationRequest, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  query := transaction.WithContext(ctx).Model(&types.GenerationRequest{})
  if filter.UserID != "" {
    query = query.Where("user_id = ?", filter.UserID)
  }
  if filter.MainTopicID != nil {
    query = query.Where("main_topic_id = ?", *filter.MainTopicID)
  }
  if filter.Status != "" {
    query = query.Where("status = ?", filter.Status)
  }
  if filter.Offset > 0 {
    query = query.Offset(filter.Offset)
  }
  if filter.Limit > 0 {
    query = query.Limit(filter.Limit)
  }

  var results []*types.GenerationRequest
  if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

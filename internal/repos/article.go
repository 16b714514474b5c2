package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type ArticleRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Article, error)
  // GetByItemAndLevel resolves the at-most-one article attached to a
  // curriculum item at a level; nil when the level gap exists.
  GetByItemAndLevel(ctx context.Context, tx *gorm.DB, curriculumItemID, levelCode string) (*types.Article, error)
  // Count sizes the article universe, optionally scoped to one sub topic.
  Count(ctx context.Context, tx *gorm.DB, subTopicID *int) (int64, error)
  // FirstUnreadByUser returns the first article by ascending article_id
  // within the universe that the user has no read record for, or nil when
  // everything has been read.
  FirstUnreadByUser(ctx context.Context, tx *gorm.DB, userID string, subTopicID *int) (*types.Article, error)
  Create(ctx context.Context, tx *gorm.DB, rows []*types.Article) ([]*types.Article, error)
}

type articleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
  repoLog := baseLog.With("repo", "ArticleRepo")
  return &articleRepo{db: db, log: repoLog}
}

func (r *articleRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Article
  err := transaction.WithContext(ctx).
    Where("article_id = ?", id).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *articleRepo) GetByItemAndLevel(ctx context.Context, tx *gorm.DB, curriculumItemID, levelCode string) (*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.Article
  err := transaction.WithContext(ctx).
    Where("curriculum_item_id = ? AND level_code = ?", curriculumItemID, levelCode).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *articleRepo) Count(ctx context.Context, tx *gorm.DB, subTopicID *int) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  query := transaction.WithContext(ctx).Model(&types.Article{})
  if subTopicID != nil {
    query = query.Where("sub_topic_id = ?", *subTopicID)
  }

  var count int64
  if err := query.Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *articleRepo) FirstUnreadByUser(ctx context.Context, tx *gorm.DB, userID string, subTopicID *int) (*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  readIDs := transaction.WithContext(ctx).
    Model(&types.ArticleRead{}).
    Select("article_id").
    Where("user_id = ?", userID)

  query := transaction.WithContext(ctx).
    Where("article_id NOT IN (?)", readIDs)
  if subTopicID != nil {
    query = query.Where("sub_topic_id = ?", *subTopicID)
  }

  var result types.Article
  err := query.Order("article_id ASC").First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *articleRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Article) ([]*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(rows) == 0 {
    return []*types.Article{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}

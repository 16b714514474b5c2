package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/types"
)

type ArticleReadRepo interface {
  // Upsert inserts the read record or refreshes read_at when the
  // (user_id, article_id) row already exists. The conflict clause keeps
  // concurrent calls for the same key from racing into duplicate inserts.
  Upsert(ctx context.Context, tx *gorm.DB, row *types.ArticleRead) error
  GetByUserAndArticle(ctx context.Context, tx *gorm.DB, userID, articleID string) (*types.ArticleRead, error)
  // CountByUser counts the user's read records inside the article universe,
  // optionally scoped to one sub topic. Scoping joins against articles so
  // the read count is always measured against the same universe as the
  // article total.
  CountByUser(ctx context.Context, tx *gorm.DB, userID string, subTopicID *int) (int64, error)
}

type articleReadRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewArticleReadRepo(db *gorm.DB, baseLog *logger.Logger) ArticleReadRepo {
  repoLog := baseLog.With("repo", "ArticleReadRepo")
  return &articleReadRepo{db: db, log: repoLog}
}

func (r *articleReadRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.ArticleRead) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"read_at"}),
    }).
    Create(row).Error
}

func (r *articleReadRepo) GetByUserAndArticle(ctx context.Context, tx *gorm.DB, userID, articleID string) (*types.ArticleRead, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.ArticleRead
  err := transaction.WithContext(ctx).
    Where("user_id = ? AND article_id = ?", userID, articleID).
    First(&result).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *articleReadRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID string, subTopicID *int) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  query := transaction.WithContext(ctx).Model(&types.ArticleRead{}).
    Where("user_article_reads.user_id = ?", userID)
  if subTopicID != nil {
    query = query.
      Joins("JOIN articles ON articles.article_id = user_article_reads.article_id").
      Where("articles.sub_topic_id = ?", *subTopicID)
  }

  var count int64
  if err := query.Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

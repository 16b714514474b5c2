package services

import (
  "context"
  "fmt"
  "time"

  "github.com/als8921/InfoU-backend/internal/apierr"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

type ProgressSummary struct {
  TotalArticles      int            `json:"total_articles"`
  ReadArticles       int            `json:"read_articles"`
  ProgressPercentage int            `json:"progress_percentage"`
  NextArticle        *types.Article `json:"next_article,omitempty"`
}

// ReadingService records article completions and summarizes a user's
// progress, globally or scoped to one sub topic.
type ReadingService interface {
  MarkRead(ctx context.Context, userID, articleID string) (*types.ArticleRead, error)
  Progress(ctx context.Context, userID string, subTopicID *int) (*ProgressSummary, error)
  IsRead(ctx context.Context, userID, articleID string) (bool, error)
}

type readingService struct {
  log         *logger.Logger
  articleRepo repos.ArticleRepo
  readRepo    repos.ArticleReadRepo
}

func NewReadingService(baseLog *logger.Logger, articleRepo repos.ArticleRepo, readRepo repos.ArticleReadRepo) ReadingService {
  return &readingService{
    log:         baseLog.With("service", "ReadingService"),
    articleRepo: articleRepo,
    readRepo:    readRepo,
  }
}

func (s *readingService) MarkRead(ctx context.Context, userID, articleID string) (*types.ArticleRead, error) {
  if userID == "" {
    return nil, apierr.Validation("missing_user", fmt.Errorf("user id required"))
  }

  article, err := s.articleRepo.GetByID(ctx, nil, articleID)
  if err != nil {
    return nil, err
  }
  if article == nil {
    return nil, apierr.NotFound("article_not_found", fmt.Errorf("article %s not found", articleID))
  }

  row := &types.ArticleRead{
    UserID:    userID,
    ArticleID: articleID,
    ReadAt:    time.Now().UTC(),
  }
  if err := s.readRepo.Upsert(ctx, nil, row); err != nil {
    return nil, err
  }
  return row, nil
}

func (s *readingService) Progress(ctx context.Context, userID string, subTopicID *int) (*ProgressSummary, error) {
  total, err := s.articleRepo.Count(ctx, nil, subTopicID)
  if err != nil {
    return nil, err
  }

  // The read count is measured against the same article universe as the
  // total, so the percentage stays inside [0,100].
  read, err := s.readRepo.CountByUser(ctx, nil, userID, subTopicID)
  if err != nil {
    return nil, err
  }

  percentage := 0
  if total > 0 {
    percentage = int(read * 100 / total)
  }

  summary := &ProgressSummary{
    TotalArticles:      int(total),
    ReadArticles:       int(read),
    ProgressPercentage: percentage,
  }

  // Next unread is picked by ascending article id within the universe, an
  // arbitrary but deterministic rule. Nil when everything has been read.
  next, err := s.articleRepo.FirstUnreadByUser(ctx, nil, userID, subTopicID)
  if err != nil {
    return nil, err
  }
  summary.NextArticle = next

  return summary, nil
}

func (s *readingService) IsRead(ctx context.Context, userID, articleID string) (bool, error) {
  rec, err := s.readRepo.GetByUserAndArticle(ctx, nil, userID, articleID)
  if err != nil {
    return false, err
  }
  return rec != nil, nil
}

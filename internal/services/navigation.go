package services

import (
  "context"
  "fmt"

  "github.com/als8921/InfoU-backend/internal/apierr"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

type Direction string

const (
  DirectionNext     Direction = "next"
  DirectionPrevious Direction = "previous"
)

// NavigationService locates the adjacent article along a learning path.
// A missing source article is an error; a path boundary, a broken
// curriculum linkage or a level gap is a nil result.
type NavigationService interface {
  GetArticle(ctx context.Context, articleID string) (*types.Article, error)
  // FindAdjacent moves one curriculum step from the given article within
  // its path. levelOverride selects the level of the target article;
  // empty means the source article's own level. The lookup never skips
  // over a level gap: callers wanting skip semantics call repeatedly.
  FindAdjacent(ctx context.Context, articleID string, direction Direction, levelOverride string) (*types.Article, error)
}

type navigationService struct {
  log         *logger.Logger
  articleRepo repos.ArticleRepo
  itemRepo    repos.CurriculumItemRepo
}

func NewNavigationService(baseLog *logger.Logger, articleRepo repos.ArticleRepo, itemRepo repos.CurriculumItemRepo) NavigationService {
  return &navigationService{
    log:         baseLog.With("service", "NavigationService"),
    articleRepo: articleRepo,
    itemRepo:    itemRepo,
  }
}

func (s *navigationService) GetArticle(ctx context.Context, articleID string) (*types.Article, error) {
  article, err := s.articleRepo.GetByID(ctx, nil, articleID)
  if err != nil {
    return nil, err
  }
  if article == nil {
    return nil, apierr.NotFound("article_not_found", fmt.Errorf("article %s not found", articleID))
  }
  return article, nil
}

func (s *navigationService) FindAdjacent(ctx context.Context, articleID string, direction Direction, levelOverride string) (*types.Article, error) {
  if direction != DirectionNext && direction != DirectionPrevious {
    return nil, apierr.Validation("invalid_direction", fmt.Errorf("direction must be next or previous, got %q", direction))
  }

  current, err := s.articleRepo.GetByID(ctx, nil, articleID)
  if err != nil {
    return nil, err
  }
  if current == nil {
    return nil, apierr.NotFound("article_not_found", fmt.Errorf("article %s not found", articleID))
  }

  level := current.LevelCode
  if levelOverride != "" {
    level = levelOverride
  }

  item, err := s.itemRepo.GetByID(ctx, nil, current.CurriculumItemID)
  if err != nil {
    return nil, err
  }
  if item == nil {
    // Absent curriculum linkage is a terminal condition for navigation,
    // not a hard error.
    s.log.Debug("Article has no resolvable curriculum item", "article_id", articleID)
    return nil, nil
  }

  var adjacent *types.CurriculumItem
  if direction == DirectionNext {
    adjacent, err = s.itemRepo.NextInPath(ctx, nil, item.PathID, item.SortOrder)
  } else {
    adjacent, err = s.itemRepo.PrevInPath(ctx, nil, item.PathID, item.SortOrder)
  }
  if err != nil {
    return nil, err
  }
  if adjacent == nil {
    // Start or end of the path.
    return nil, nil
  }

  // Level gaps are surfaced as absence, never skipped.
  return s.articleRepo.GetByItemAndLevel(ctx, nil, adjacent.ID, level)
}

package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/als8921/InfoU-backend/internal/apierr"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

// Rough planning figure shown in listings: two study hours per
// curriculum item.
const estimatedHoursPerItem = 2

type LearningPathSummary struct {
  PathID          string `json:"path_id"`
  Title           string `json:"title"`
  Description     string `json:"description"`
  CurriculumCount int    `json:"curriculum_count"`
  EstimatedHours  int    `json:"estimated_hours"`
  IsDefault       bool   `json:"is_default"`
}

type LearningPathDetail struct {
  PathID          string                  `json:"path_id"`
  Title           string                  `json:"title"`
  Description     string                  `json:"description"`
  CurriculumItems []*types.CurriculumItem `json:"curriculum_items"`
}

type GeneratePathInput struct {
  LearningObjective string
  Difficulty        string
  ItemCount         int
}

type PathService interface {
  ListBySubTopic(ctx context.Context, subTopicID int) ([]*LearningPathSummary, error)
  GetDetail(ctx context.Context, pathID string) (*LearningPathDetail, error)
  ListCurriculumItems(ctx context.Context, pathID string) ([]*types.CurriculumItem, error)
  // GeneratePath creates a scaffold path with numbered curriculum items
  // for the sub topic. Article content for the items is produced
  // separately.
  GeneratePath(ctx context.Context, subTopicID int, input GeneratePathInput) (*LearningPathDetail, error)
}

type pathService struct {
  db  *gorm.DB
  log *logger.Logger

  subTopicRepo repos.SubTopicRepo
  pathRepo     repos.LearningPathRepo
  itemRepo     repos.CurriculumItemRepo
  ids          IDGenerator
}

func NewPathService(
  db *gorm.DB,
  baseLog *logger.Logger,
  subTopicRepo repos.SubTopicRepo,
  pathRepo repos.LearningPathRepo,
  itemRepo repos.CurriculumItemRepo,
  ids IDGenerator,
) PathService {
  return &pathService{
    db:           db,
    log:          baseLog.With("service", "PathService"),
    subTopicRepo: subTopicRepo,
    pathRepo:     pathRepo,
    itemRepo:     itemRepo,
    ids:          ids,
  }
}

func (s *pathService) ListBySubTopic(ctx context.Context, subTopicID int) ([]*LearningPathSummary, error) {
  subTopic, err := s.subTopicRepo.GetByID(ctx, nil, subTopicID)
  if err != nil {
    return nil, err
  }
  if subTopic == nil {
    return nil, apierr.NotFound("sub_topic_not_found", fmt.Errorf("sub topic %d not found", subTopicID))
  }

  paths, err := s.pathRepo.GetBySubTopicID(ctx, nil, subTopicID)
  if err != nil {
    return nil, err
  }

  summaries := make([]*LearningPathSummary, 0, len(paths))
  for _, path := range paths {
    count, err := s.itemRepo.CountByPathID(ctx, nil, path.ID)
    if err != nil {
      return nil, err
    }
    summaries = append(summaries, &LearningPathSummary{
      PathID:          path.ID,
      Title:           path.Title,
      Description:     path.Description,
      CurriculumCount: int(count),
      EstimatedHours:  int(count) * estimatedHoursPerItem,
      IsDefault:       path.IsDefault,
    })
  }
  return summaries, nil
}

func (s *pathService) GetDetail(ctx context.Context, pathID string) (*LearningPathDetail, error) {
  path, err := s.pathRepo.GetByID(ctx, nil, pathID)
  if err != nil {
    return nil, err
  }
  if path == nil {
    return nil, apierr.NotFound("learning_path_not_found", fmt.Errorf("learning path %s not found", pathID))
  }

  items, err := s.itemRepo.GetByPathID(ctx, nil, pathID)
  if err != nil {
    return nil, err
  }

  return &LearningPathDetail{
    PathID:          path.ID,
    Title:           path.Title,
    Description:     path.Description,
    CurriculumItems: items,
  }, nil
}

func (s *pathService) ListCurriculumItems(ctx context.Context, pathID string) ([]*types.CurriculumItem, error) {
  path, err := s.pathRepo.GetByID(ctx, nil, pathID)
  if err != nil {
    return nil, err
  }
  if path == nil {
    return nil, apierr.NotFound("learning_path_not_found", fmt.Errorf("learning path %s not found", pathID))
  }
  return s.itemRepo.GetByPathID(ctx, nil, pathID)
}

func (s *pathService) GeneratePath(ctx context.Context, subTopicID int, input GeneratePathInput) (*LearningPathDetail, error) {
  if input.LearningObjective == "" {
    return nil, apierr.Validation("missing_learning_objective", fmt.Errorf("learning_objective required"))
  }
  if input.ItemCount <= 0 {
    return nil, apierr.Validation("invalid_item_count", fmt.Errorf("item_count must be positive, got %d", input.ItemCount))
  }

  subTopic, err := s.subTopicRepo.GetByID(ctx, nil, subTopicID)
  if err != nil {
    return nil, err
  }
  if subTopic == nil {
    return nil, apierr.NotFound("sub_topic_not_found", fmt.Errorf("sub topic %d not found", subTopicID))
  }

  path := &types.LearningPath{
    ID:          s.ids.PathID(),
    SubTopicID:  subTopicID,
    Title:       fmt.Sprintf("%s - %s 과정", input.LearningObjective, input.Difficulty),
    Description: fmt.Sprintf("%s를 위한 %s 수준의 학습 과정", input.LearningObjective, input.Difficulty),
    IsDefault:   false,
  }

  items := make([]*types.CurriculumItem, 0, input.ItemCount)
  for i := 0; i < input.ItemCount; i++ {
    items = append(items, &types.CurriculumItem{
      ID:         s.ids.ItemID(),
      SubTopicID: subTopicID,
      PathID:     path.ID,
      Title:      fmt.Sprintf("%s - %d단계", input.LearningObjective, i+1),
      SortOrder:  i + 1,
    })
  }

  err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := s.pathRepo.Create(ctx, tx, []*types.LearningPath{path}); err != nil {
      return fmt.Errorf("create learning path: %w", err)
    }
    if _, err := s.itemRepo.Create(ctx, tx, items); err != nil {
      return fmt.Errorf("create curriculum items: %w", err)
    }
    return nil
  })
  if err != nil {
    return nil, err
  }

  return &LearningPathDetail{
    PathID:          path.ID,
    Title:           path.Title,
    Description:     path.Description,
    CurriculumItems: items,
  }, nil
}

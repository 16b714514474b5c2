package services

import (
  "context"
  "fmt"

  "github.com/als8921/InfoU-backend/internal/apierr"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

type CuratedSubTopicPage struct {
  Items   []*types.CuratedSubTopic `json:"items"`
  Total   int64                    `json:"total"`
  Offset  int                      `json:"offset"`
  Limit   int                      `json:"limit"`
  HasMore bool                     `json:"has_more"`
}

type TopicService interface {
  ListMainTopics(ctx context.Context) ([]*types.MainTopic, error)
  GetMainTopic(ctx context.Context, id int) (*types.MainTopic, error)
  ListSubTopics(ctx context.Context, mainTopicID int) ([]*types.SubTopic, error)
  GetSubTopic(ctx context.Context, id int) (*types.SubTopic, error)
  // GenerateSubTopic creates a placeholder generated sub topic from a
  // hint. Real content generation goes through GenerationService.
  GenerateSubTopic(ctx context.Context, mainTopicID int, topicHint string) (*types.SubTopic, error)
  ListCuratedSubTopics(ctx context.Context, filter repos.CuratedSubTopicFilter) (*CuratedSubTopicPage, error)
  GetCuratedSubTopic(ctx context.Context, id int) (*types.CuratedSubTopic, error)
  ListCuratedByLevel(ctx context.Context, levelCode string) ([]*types.CuratedSubTopic, error)
  ListPopularCurated(ctx context.Context, levelCode string, limit int) ([]*types.CuratedSubTopic, error)
}

type topicService struct {
  log           *logger.Logger
  mainTopicRepo repos.MainTopicRepo
  subTopicRepo  repos.SubTopicRepo
  curatedRepo   repos.CuratedSubTopicRepo
  levelRepo     repos.LevelRepo
}

func NewTopicService(
  baseLog *logger.Logger,
  mainTopicRepo repos.MainTopicRepo,
  subTopicRepo repos.SubTopicRepo,
  curatedRepo repos.CuratedSubTopicRepo,
  levelRepo repos.LevelRepo,
) TopicService {
  return &topicService{
    log:           baseLog.With("service", "TopicService"),
    mainTopicRepo: mainTopicRepo,
    subTopicRepo:  subTopicRepo,
    curatedRepo:   curatedRepo,
    levelRepo:     levelRepo,
  }
}

func (s *topicService) ListMainTopics(ctx context.Context) ([]*types.MainTopic, error) {
  return s.mainTopicRepo.List(ctx, nil)
}

func (s *topicService) GetMainTopic(ctx context.Context, id int) (*types.MainTopic, error) {
  topic, err := s.mainTopicRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if topic == nil {
    return nil, apierr.NotFound("main_topic_not_found", fmt.Errorf("main topic %d not found", id))
  }
  return topic, nil
}

func (s *topicService) ListSubTopics(ctx context.Context, mainTopicID int) ([]*types.SubTopic, error) {
  if _, err := s.GetMainTopic(ctx, mainTopicID); err != nil {
    return nil, err
  }
  return s.subTopicRepo.GetByMainTopicID(ctx, nil, mainTopicID)
}

func (s *topicService) GetSubTopic(ctx context.Context, id int) (*types.SubTopic, error) {
  subTopic, err := s.subTopicRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if subTopic == nil {
    return nil, apierr.NotFound("sub_topic_not_found", fmt.Errorf("sub topic %d not found", id))
  }
  return subTopic, nil
}

func (s *topicService) GenerateSubTopic(ctx context.Context, mainTopicID int, topicHint string) (*types.SubTopic, error) {
  if topicHint == "" {
    return nil, apierr.Validation("missing_topic_hint", fmt.Errorf("topic_hint required"))
  }
  if _, err := s.GetMainTopic(ctx, mainTopicID); err != nil {
    return nil, err
  }

  subTopic := &types.SubTopic{
    MainTopicID: mainTopicID,
    Name:        fmt.Sprintf("%s 입문", topicHint),
    Description: fmt.Sprintf("%s에 대한 기초 학습 내용", topicHint),
    SourceType:  types.SubTopicSourceGenerated,
  }
  rows, err := s.subTopicRepo.Create(ctx, nil, []*types.SubTopic{subTopic})
  if err != nil {
    return nil, err
  }
  return rows[0], nil
}

func (s *topicService) ListCuratedSubTopics(ctx context.Context, filter repos.CuratedSubTopicFilter) (*CuratedSubTopicPage, error) {
  if filter.Limit <= 0 {
    filter.Limit = 20
  }

  total, err := s.curatedRepo.CountActive(ctx, nil, filter)
  if err != nil {
    return nil, err
  }
  items, err := s.curatedRepo.ListActive(ctx, nil, filter)
  if err != nil {
    return nil, err
  }

  return &CuratedSubTopicPage{
    Items:   items,
    Total:   total,
    Offset:  filter.Offset,
    Limit:   filter.Limit,
    HasMore: int64(filter.Offset+len(items)) < total,
  }, nil
}

func (s *topicService) GetCuratedSubTopic(ctx context.Context, id int) (*types.CuratedSubTopic, error) {
  subTopic, err := s.curatedRepo.GetActiveByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if subTopic == nil {
    return nil, apierr.NotFound("curated_sub_topic_not_found", fmt.Errorf("curated sub topic %d not found", id))
  }
  return subTopic, nil
}

func (s *topicService) resolveLevel(ctx context.Context, levelCode string) (*types.Level, error) {
  level, err := s.levelRepo.GetByCode(ctx, nil, levelCode)
  if err != nil {
    return nil, err
  }
  if level == nil {
    return nil, apierr.NotFound("level_not_found", fmt.Errorf("level %s not found", levelCode))
  }
  return level, nil
}

func (s *topicService) ListCuratedByLevel(ctx context.Context, levelCode string) ([]*types.CuratedSubTopic, error) {
  level, err := s.resolveLevel(ctx, levelCode)
  if err != nil {
    return nil, err
  }
  return s.curatedRepo.ListActive(ctx, nil, repos.CuratedSubTopicFilter{LevelID: &level.ID})
}

func (s *topicService) ListPopularCurated(ctx context.Context, levelCode string, limit int) ([]*types.CuratedSubTopic, error) {
  level, err := s.resolveLevel(ctx, levelCode)
  if err != nil {
    return nil, err
  }
  return s.curatedRepo.ListPopular(ctx, nil, level.ID, limit)
}

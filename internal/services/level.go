package services

import (
  "context"
  "fmt"

  "github.com/als8921/InfoU-backend/internal/apierr"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

type LevelService interface {
  List(ctx context.Context) ([]*types.Level, error)
  GetByCode(ctx context.Context, code string) (*types.Level, error)
}

type levelService struct {
  log       *logger.Logger
  levelRepo repos.LevelRepo
}

func NewLevelService(baseLog *logger.Logger, levelRepo repos.LevelRepo) LevelService {
  return &levelService{
    log:       baseLog.With("service", "LevelService"),
    levelRepo: levelRepo,
  }
}

func (s *levelService) List(ctx context.Context) ([]*types.Level, error) {
  return s.levelRepo.List(ctx, nil)
}

func (s *levelService) GetByCode(ctx context.Context, code string) (*types.Level, error) {
  level, err := s.levelRepo.GetByCode(ctx, nil, code)
  if err != nil {
    return nil, err
  }
  if level == nil {
    return nil, apierr.NotFound("level_not_found", fmt.Errorf("level %s not found", code))
  }
  return level, nil
}

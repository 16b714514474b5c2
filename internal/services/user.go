package services

import (
  "context"
  "fmt"

  "github.com/google/uuid"

  "github.com/als8921/InfoU-backend/internal/apierr"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

type UserService interface {
  List(ctx context.Context) ([]*types.User, error)
  GetByID(ctx context.Context, id string) (*types.User, error)
  Create(ctx context.Context, nickname, email string) (*types.User, error)
}

type userService struct {
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
  return &userService{
    log:      baseLog.With("service", "UserService"),
    userRepo: userRepo,
  }
}

func (s *userService) List(ctx context.Context) ([]*types.User, error) {
  return s.userRepo.List(ctx, nil)
}

func (s *userService) GetByID(ctx context.Context, id string) (*types.User, error) {
  user, err := s.userRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if user == nil {
    return nil, apierr.NotFound("user_not_found", fmt.Errorf("user %s not found", id))
  }
  return user, nil
}

func (s *userService) Create(ctx context.Context, nickname, email string) (*types.User, error) {
  if nickname == "" {
    return nil, apierr.Validation("missing_nickname", fmt.Errorf("nickname required"))
  }

  user := &types.User{
    ID:       uuid.NewString(),
    Nickname: nickname,
    Email:    email,
  }
  return s.userRepo.Create(ctx, nil, user)
}

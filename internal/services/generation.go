package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"

  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/als8921/InfoU-backend/internal/apierr"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/types"
)

// GenerationService drives the lifecycle of a sub topic generation request:
// pending -> processing -> completed | failed. The provider call happens
// outside any store transaction so a slow or failed call never holds locks.
// Requests are never retried; a retry is a new request with its own cost.
type GenerationService interface {
  // Submit runs a generation request end to end and returns the request in
  // its terminal state. Provider and persistence failures are folded into
  // the failed state, not propagated; the caller always receives a well
  // formed request once it has been accepted.
  Submit(ctx context.Context, userID string, mainTopicID int, personalization, parameters datatypes.JSON) (*types.GenerationRequest, error)
  GetRequest(ctx context.Context, id int) (*types.GenerationRequest, error)
  ListRequests(ctx context.Context, filter repos.GenerationRequestFilter) ([]*types.GenerationRequest, error)
  GetGeneratedSubTopic(ctx context.Context, id int) (*types.GeneratedSubTopic, error)
  ListGeneratedSubTopics(ctx context.Context, filter repos.GeneratedSubTopicFilter) ([]*types.GeneratedSubTopic, error)
  DeleteGeneratedSubTopic(ctx context.Context, id int) error
}

type generationService struct {
  db  *gorm.DB
  log *logger.Logger

  mainTopicRepo repos.MainTopicRepo
  requestRepo   repos.GenerationRequestRepo
  generatedRepo repos.GeneratedSubTopicRepo

  llm LLMClient
}

func NewGenerationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  mainTopicRepo repos.MainTopicRepo,
  requestRepo repos.GenerationRequestRepo,
  generatedRepo repos.GeneratedSubTopicRepo,
  llm LLMClient,
) GenerationService {
  return &generationService{
    db:            db,
    log:           baseLog.With("service", "GenerationService"),
    mainTopicRepo: mainTopicRepo,
    requestRepo:   requestRepo,
    generatedRepo: generatedRepo,
    llm:           llm,
  }
}

func (s *generationService) Submit(ctx context.Context, userID string, mainTopicID int, personalization, parameters datatypes.JSON) (*types.GenerationRequest, error) {
  if userID == "" {
    return nil, apierr.Validation("missing_user", fmt.Errorf("user id required"))
  }

  topic, err := s.mainTopicRepo.GetByID(ctx, nil, mainTopicID)
  if err != nil {
    return nil, err
  }
  if topic == nil {
    return nil, apierr.NotFound("main_topic_not_found", fmt.Errorf("main topic %d not found", mainTopicID))
  }

  // Accept the request: persist pending then processing before any
  // external call, so a crash mid generation still leaves an auditable
  // record.
  var request *types.GenerationRequest
  err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    now := time.Now().UTC()
    request = &types.GenerationRequest{
      UserID:          userID,
      MainTopicID:     mainTopicID,
      Personalization: personalization,
      Parameters:      parameters,
      Status:          types.GenerationStatusPending,
      CreatedAt:       now,
      UpdatedAt:       now,
    }
    if _, err := s.requestRepo.Create(ctx, tx, request); err != nil {
      return fmt.Errorf("create generation request: %w", err)
    }
    if err := s.requestRepo.UpdateFields(ctx, tx, request.ID, map[string]any{
      "status":     types.GenerationStatusProcessing,
      "updated_at": now,
    }); err != nil {
      return fmt.Errorf("mark processing: %w", err)
    }
    request.Status = types.GenerationStatusProcessing
    return nil
  })
  if err != nil {
    return nil, err
  }

  params := decodeParameters(parameters)
  prompt := buildSubTopicPrompt(topic.Name, topic.Description, decodePersonalization(personalization), params.Count)

  // Provider call, no transaction held.
  result, err := s.llm.Generate(ctx, prompt)
  if err != nil {
    s.log.Error("Provider call failed", "request_id", request.ID, "error", err)
    return s.fail(ctx, request, err)
  }

  items, parsed := parseGeneratedSubTopics(result.Text)
  if !parsed {
    // The provider responded, so tokens were spent; the request still
    // completes, with zero items and a zero quality score.
    s.log.Warn("Provider response was not parsable JSON",
      "request_id", request.ID,
      "response_length", len(result.Text),
    )
    items = nil
  }

  quality := calculateQualityScore(items)

  err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    now := time.Now().UTC()

    rows := make([]*types.GeneratedSubTopic, 0, len(items))
    for _, item := range items {
      rows = append(rows, &types.GeneratedSubTopic{
        Title:                    item.Title,
        Description:              item.Description,
        MainTopicID:              mainTopicID,
        GenerationRequestID:      request.ID,
        Keywords:                 mustJSON(item.Keywords),
        LearningObjectives:       mustJSON(item.LearningObjectives),
        Prerequisites:            mustJSON(item.Prerequisites),
        EstimatedDurationMinutes: item.EstimatedDurationMinutes,
        DifficultyScore:          item.DifficultyScore,
        IsActive:                 true,
        QualityScore:             &quality,
        CreatedAt:                now,
        UpdatedAt:                now,
      })
    }
    if _, err := s.generatedRepo.Create(ctx, tx, rows); err != nil {
      return fmt.Errorf("persist generated sub topics: %w", err)
    }

    return s.requestRepo.UpdateFields(ctx, tx, request.ID, map[string]any{
      "status":          types.GenerationStatusCompleted,
      "tokens_used":     result.TokensUsed,
      "cost_usd":        calculateCostUSD(result.TokensUsed),
      "model_used":      s.llm.Model(),
      "total_generated": len(rows),
      "quality_score":   quality,
      "completed_at":    now,
      "updated_at":      now,
    })
  })
  if err != nil {
    s.log.Error("Persisting generation result failed", "request_id", request.ID, "error", err)
    return s.fail(ctx, request, err)
  }

  return s.requestRepo.GetByID(ctx, nil, request.ID)
}

// fail moves the request to its failed terminal state. completed_at stays
// unset; failure is terminal but distinct from success.
func (s *generationService) fail(ctx context.Context, request *types.GenerationRequest, cause error) (*types.GenerationRequest, error) {
  if err := s.requestRepo.UpdateFields(ctx, nil, request.ID, map[string]any{
    "status":        types.GenerationStatusFailed,
    "error_message": cause.Error(),
    "updated_at":    time.Now().UTC(),
  }); err != nil {
    s.log.Error("Could not mark generation request failed", "request_id", request.ID, "error", err)
    return nil, err
  }
  return s.requestRepo.GetByID(ctx, nil, request.ID)
}

func (s *generationService) GetRequest(ctx context.Context, id int) (*types.GenerationRequest, error) {
  request, err := s.requestRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if request == nil {
    return nil, apierr.NotFound("generation_request_not_found", fmt.Errorf("generation request %d not found", id))
  }
  return request, nil
}

func (s *generationService) ListRequests(ctx context.Context, filter repos.GenerationRequestFilter) ([]*types.GenerationRequest, error) {
  return s.requestRepo.List(ctx, nil, filter)
}

func (s *generationService) GetGeneratedSubTopic(ctx context.Context, id int) (*types.GeneratedSubTopic, error) {
  subTopic, err := s.generatedRepo.GetActiveByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if subTopic == nil {
    return nil, apierr.NotFound("generated_sub_topic_not_found", fmt.Errorf("generated sub topic %d not found", id))
  }
  return subTopic, nil
}

func (s *generationService) ListGeneratedSubTopics(ctx context.Context, filter repos.GeneratedSubTopicFilter) ([]*types.GeneratedSubTopic, error) {
  return s.generatedRepo.ListActive(ctx, nil, filter)
}

func (s *generationService) DeleteGeneratedSubTopic(ctx context.Context, id int) error {
  deleted, err := s.generatedRepo.SoftDeleteByID(ctx, nil, id)
  if err != nil {
    return err
  }
  if !deleted {
    return apierr.NotFound("generated_sub_topic_not_found", fmt.Errorf("generated sub topic %d not found", id))
  }
  return nil
}

func mustJSON(v any) datatypes.JSON {
  if v == nil {
    return datatypes.JSON([]byte("null"))
  }
  b, err := json.Marshal(v)
  if err != nil {
    return datatypes.JSON([]byte("null"))
  }
  return datatypes.JSON(b)
}

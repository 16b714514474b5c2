package handlers

import (
  "encoding/json"
  "net/http"

  "github.com/gin-gonic/gin"
  "gorm.io/datatypes"

  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/services"
)

type GenerationHandler struct {
  generation services.GenerationService
}

func NewGenerationHandler(generation services.GenerationService) *GenerationHandler {
  return &GenerationHandler{generation: generation}
}

type GenerateSubTopicsRequest struct {
  MainTopicID          int            `json:"main_topic_id" binding:"required"`
  PersonalizationData  map[string]any `json:"personalization_data"`
  GenerationParameters map[string]any `json:"generation_parameters"`
}

func (h *GenerationHandler) Generate(c *gin.Context) {
  userID := CurrentUserID(c)
  if userID == "" {
    RespondError(c, http.StatusUnauthorized, "invalid_authorization", errInvalidAuthorization)
    return
  }

  var req GenerateSubTopicsRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  request, err := h.generation.Submit(
    c.Request.Context(),
    userID,
    req.MainTopicID,
    toJSON(req.PersonalizationData),
    toJSON(req.GenerationParameters),
  )
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, request)
}

func (h *GenerationHandler) GetRequest(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }
  request, err := h.generation.GetRequest(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, request)
}

func (h *GenerationHandler) ListRequests(c *gin.Context) {
  userID := CurrentUserID(c)
  if userID == "" {
    RespondError(c, http.StatusUnauthorized, "invalid_authorization", errInvalidAuthorization)
    return
  }

  filter := repos.GenerationRequestFilter{
    UserID:      userID,
    MainTopicID: queryIntPtr(c, "main_topic_id"),
    Status:      c.Query("status"),
    Offset:      queryInt(c, "skip", 0),
    Limit:       queryInt(c, "limit", 10),
  }
  requests, err := h.generation.ListRequests(c.Request.Context(), filter)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, requests)
}

func (h *GenerationHandler) GetGeneratedSubTopic(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }
  subTopic, err := h.generation.GetGeneratedSubTopic(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, subTopic)
}

func (h *GenerationHandler) ListGeneratedSubTopics(c *gin.Context) {
  filter := repos.GeneratedSubTopicFilter{
    MainTopicID:         queryIntPtr(c, "main_topic_id"),
    GenerationRequestID: queryIntPtr(c, "generation_request_id"),
    Offset:              queryInt(c, "skip", 0),
    Limit:               queryInt(c, "limit", 20),
  }
  subTopics, err := h.generation.ListGeneratedSubTopics(c.Request.Context(), filter)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, subTopics)
}

func (h *GenerationHandler) DeleteGeneratedSubTopic(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }
  if err := h.generation.DeleteGeneratedSubTopic(c.Request.Context(), id); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "generated sub topic deleted"})
}

func toJSON(m map[string]any) datatypes.JSON {
  if m == nil {
    return nil
  }
  b, err := json.Marshal(m)
  if err != nil {
    return nil
  }
  return datatypes.JSON(b)
}

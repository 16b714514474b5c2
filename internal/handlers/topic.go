package handlers

import (
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/services"
)

type TopicHandler struct {
  topics services.TopicService
}

func NewTopicHandler(topics services.TopicService) *TopicHandler {
  return &TopicHandler{topics: topics}
}

func pathIntParam(c *gin.Context, name string) (int, bool) {
  id, err := strconv.Atoi(c.Param(name))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_"+name, err)
    return 0, false
  }
  return id, true
}

func (h *TopicHandler) ListMainTopics(c *gin.Context) {
  topics, err := h.topics.ListMainTopics(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, topics)
}

func (h *TopicHandler) GetMainTopic(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }
  topic, err := h.topics.GetMainTopic(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, topic)
}

func (h *TopicHandler) ListSubTopics(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }
  subTopics, err := h.topics.ListSubTopics(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, subTopics)
}

type GenerateSubTopicRequest struct {
  TopicHint string `json:"topic_hint" binding:"required"`
}

func (h *TopicHandler) GenerateSubTopic(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }

  var req GenerateSubTopicRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  subTopic, err := h.topics.GenerateSubTopic(c.Request.Context(), id, req.TopicHint)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, subTopic)
}

func queryIntPtr(c *gin.Context, name string) *int {
  raw := c.Query(name)
  if raw == "" {
    return nil
  }
  id, err := strconv.Atoi(raw)
  if err != nil {
    return nil
  }
  return &id
}

func queryInt(c *gin.Context, name string, defaultVal int) int {
  raw := c.Query(name)
  if raw == "" {
    return defaultVal
  }
  v, err := strconv.Atoi(raw)
  if err != nil {
    return defaultVal
  }
  return v
}

func (h *TopicHandler) ListCuratedSubTopics(c *gin.Context) {
  filter := repos.CuratedSubTopicFilter{
    MainTopicID: queryIntPtr(c, "main_topic_id"),
    LevelID:     queryIntPtr(c, "level_id"),
    Offset:      queryInt(c, "skip", 0),
    Limit:       queryInt(c, "limit", 20),
  }

  page, err := h.topics.ListCuratedSubTopics(c.Request.Context(), filter)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, page)
}

func (h *TopicHandler) GetCuratedSubTopic(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }
  subTopic, err := h.topics.GetCuratedSubTopic(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, subTopic)
}

func (h *TopicHandler) ListCuratedByLevel(c *gin.Context) {
  subTopics, err := h.topics.ListCuratedByLevel(c.Request.Context(), c.Param("code"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, subTopics)
}

func (h *TopicHandler) ListPopularCurated(c *gin.Context) {
  subTopics, err := h.topics.ListPopularCurated(c.Request.Context(), c.Param("code"), queryInt(c, "limit", 10))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, subTopics)
}

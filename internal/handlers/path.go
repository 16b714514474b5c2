package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/als8921/InfoU-backend/internal/services"
)

type PathHandler struct {
  paths services.PathService
}

func NewPathHandler(paths services.PathService) *PathHandler {
  return &PathHandler{paths: paths}
}

func (h *PathHandler) ListBySubTopic(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }
  summaries, err := h.paths.ListBySubTopic(c.Request.Context(), id)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, summaries)
}

func (h *PathHandler) GetDetail(c *gin.Context) {
  detail, err := h.paths.GetDetail(c.Request.Context(), c.Param("id"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, detail)
}

func (h *PathHandler) ListCurriculumItems(c *gin.Context) {
  items, err := h.paths.ListCurriculumItems(c.Request.Context(), c.Param("id"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, items)
}

type GeneratePathRequest struct {
  LearningObjective string `json:"learning_objective" binding:"required"`
  Difficulty        string `json:"difficulty" binding:"required"`
  ItemCount         int    `json:"item_count" binding:"required"`
}

func (h *PathHandler) GeneratePath(c *gin.Context) {
  id, ok := pathIntParam(c, "id")
  if !ok {
    return
  }

  var req GeneratePathRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  detail, err := h.paths.GeneratePath(c.Request.Context(), id, services.GeneratePathInput{
    LearningObjective: req.LearningObjective,
    Difficulty:        req.Difficulty,
    ItemCount:         req.ItemCount,
  })
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, detail)
}

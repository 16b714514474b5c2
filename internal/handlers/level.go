package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/als8921/InfoU-backend/internal/services"
)

type LevelHandler struct {
  levels services.LevelService
}

func NewLevelHandler(levels services.LevelService) *LevelHandler {
  return &LevelHandler{levels: levels}
}

func (h *LevelHandler) ListLevels(c *gin.Context) {
  levels, err := h.levels.List(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"levels": levels})
}

func (h *LevelHandler) GetLevel(c *gin.Context) {
  level, err := h.levels.GetByCode(c.Request.Context(), c.Param("code"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, level)
}

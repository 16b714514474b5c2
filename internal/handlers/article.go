package handlers

import (
  "net/http"
  "time"

  "github.com/gin-gonic/gin"

  "github.com/als8921/InfoU-backend/internal/services"
)

type ArticleHandler struct {
  navigation services.NavigationService
  reading    services.ReadingService
}

func NewArticleHandler(navigation services.NavigationService, reading services.ReadingService) *ArticleHandler {
  return &ArticleHandler{navigation: navigation, reading: reading}
}

type ArticleResponse struct {
  ArticleID        string `json:"article_id"`
  Title            string `json:"title"`
  Body             string `json:"body"`
  LevelCode        string `json:"level_code"`
  CurriculumItemID string `json:"curriculum_item_id"`
  IsRead           *bool  `json:"is_read,omitempty"`
}

type ArticleNavigationResponse struct {
  ArticleID        string `json:"article_id"`
  Title            string `json:"title"`
  CurriculumItemID string `json:"curriculum_item_id"`
}

type ReadResponse struct {
  ArticleID string `json:"article_id"`
  ReadAt    string `json:"read_at"`
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
  article, err := h.navigation.GetArticle(c.Request.Context(), c.Param("id"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }

  resp := ArticleResponse{
    ArticleID:        article.ID,
    Title:            article.Title,
    Body:             article.Body,
    LevelCode:        article.LevelCode,
    CurriculumItemID: article.CurriculumItemID,
  }

  if userID := CurrentUserID(c); userID != "" {
    isRead, err := h.reading.IsRead(c.Request.Context(), userID, article.ID)
    if err == nil {
      resp.IsRead = &isRead
    }
  }

  RespondOK(c, resp)
}

func (h *ArticleHandler) adjacent(c *gin.Context, direction services.Direction) {
  article, err := h.navigation.FindAdjacent(
    c.Request.Context(),
    c.Param("id"),
    direction,
    c.Query("level"),
  )
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  if article == nil {
    // Path boundary or level gap: a defined empty result.
    c.JSON(http.StatusOK, nil)
    return
  }
  RespondOK(c, ArticleNavigationResponse{
    ArticleID:        article.ID,
    Title:            article.Title,
    CurriculumItemID: article.CurriculumItemID,
  })
}

func (h *ArticleHandler) GetNextArticle(c *gin.Context) {
  h.adjacent(c, services.DirectionNext)
}

func (h *ArticleHandler) GetPreviousArticle(c *gin.Context) {
  h.adjacent(c, services.DirectionPrevious)
}

func (h *ArticleHandler) MarkRead(c *gin.Context) {
  userID := CurrentUserID(c)
  if userID == "" {
    RespondError(c, http.StatusUnauthorized, "invalid_authorization", errInvalidAuthorization)
    return
  }

  record, err := h.reading.MarkRead(c.Request.Context(), userID, c.Param("id"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, ReadResponse{
    ArticleID: record.ArticleID,
    ReadAt:    record.ReadAt.UTC().Format(time.RFC3339),
  })
}

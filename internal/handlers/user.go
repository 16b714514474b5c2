package handlers

import (
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/als8921/InfoU-backend/internal/services"
)

type UserHandler struct {
  users   services.UserService
  reading services.ReadingService
}

func NewUserHandler(users services.UserService, reading services.ReadingService) *UserHandler {
  return &UserHandler{users: users, reading: reading}
}

type CreateUserRequest struct {
  Nickname string `json:"nickname" binding:"required"`
  Email    string `json:"email"`
}

func (h *UserHandler) ListUsers(c *gin.Context) {
  users, err := h.users.List(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
  user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
  var req CreateUserRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }

  user, err := h.users.Create(c.Request.Context(), req.Nickname, req.Email)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, user)
}

type ProgressResponse struct {
  TotalArticles      int                     `json:"total_articles"`
  ReadArticles       int                     `json:"read_articles"`
  ProgressPercentage int                     `json:"progress_percentage"`
  CurrentArticle     *CurrentArticleResponse `json:"current_article,omitempty"`
}

type CurrentArticleResponse struct {
  ArticleID string `json:"article_id"`
  Title     string `json:"title"`
}

func (h *UserHandler) GetProgress(c *gin.Context) {
  tokenUserID := CurrentUserID(c)
  if tokenUserID == "" {
    RespondError(c, http.StatusUnauthorized, "invalid_authorization", errInvalidAuthorization)
    return
  }
  if c.Param("id") != tokenUserID {
    RespondError(c, http.StatusForbidden, "access_forbidden", errAccessForbidden)
    return
  }

  var subTopicID *int
  if raw := c.Query("sub_topic_id"); raw != "" {
    id, err := strconv.Atoi(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_sub_topic_id", err)
      return
    }
    subTopicID = &id
  }

  summary, err := h.reading.Progress(c.Request.Context(), tokenUserID, subTopicID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }

  resp := ProgressResponse{
    TotalArticles:      summary.TotalArticles,
    ReadArticles:       summary.ReadArticles,
    ProgressPercentage: summary.ProgressPercentage,
  }
  if summary.NextArticle != nil {
    resp.CurrentArticle = &CurrentArticleResponse{
      ArticleID: summary.NextArticle.ID,
      Title:     summary.NextArticle.Title,
    }
  }
  RespondOK(c, resp)
}

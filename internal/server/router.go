package server

import (
  "strings"

  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/als8921/InfoU-backend/internal/handlers"
)

type RouterConfig struct {
  CORSOrigins       []string
  ArticleHandler    *handlers.ArticleHandler
  UserHandler       *handlers.UserHandler
  TopicHandler      *handlers.TopicHandler
  PathHandler       *handlers.PathHandler
  LevelHandler      *handlers.LevelHandler
  GenerationHandler *handlers.GenerationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  origins := cfg.CORSOrigins
  if len(origins) == 0 {
    origins = []string{"http://localhost:3000", "http://localhost:8080"}
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     origins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/health", handlers.HealthCheck)

  api := router.Group("/api")
  {
    // Topics
    api.GET("/main-topics", cfg.TopicHandler.ListMainTopics)
    api.GET("/main-topics/:id", cfg.TopicHandler.GetMainTopic)
    api.GET("/main-topics/:id/sub-topics", cfg.TopicHandler.ListSubTopics)
    api.POST("/main-topics/:id/sub-topics/generate", cfg.TopicHandler.GenerateSubTopic)

    // Learning paths
    api.GET("/sub-topics/:id/learning-paths", cfg.PathHandler.ListBySubTopic)
    api.POST("/sub-topics/:id/learning-paths/generate", cfg.PathHandler.GeneratePath)
    api.GET("/learning-paths/:id", cfg.PathHandler.GetDetail)
    api.GET("/learning-paths/:id/curriculum-items", cfg.PathHandler.ListCurriculumItems)

    // Articles and reading
    api.GET("/articles/:id", cfg.ArticleHandler.GetArticle)
    api.GET("/articles/:id/next", cfg.ArticleHandler.GetNextArticle)
    api.GET("/articles/:id/previous", cfg.ArticleHandler.GetPreviousArticle)
    api.POST("/articles/:id/read", cfg.ArticleHandler.MarkRead)

    // Users and progress
    api.GET("/users", cfg.UserHandler.ListUsers)
    api.POST("/users", cfg.UserHandler.CreateUser)
    api.GET("/users/:id", cfg.UserHandler.GetUser)
    api.GET("/users/:id/progress", cfg.UserHandler.GetProgress)

    // Levels
    api.GET("/levels", cfg.LevelHandler.ListLevels)
    api.GET("/levels/:code", cfg.LevelHandler.GetLevel)

    // Curated sub topics
    api.GET("/curated-sub-topics", cfg.TopicHandler.ListCuratedSubTopics)
    api.GET("/curated-sub-topics/by-level/:code", cfg.TopicHandler.ListCuratedByLevel)
    api.GET("/curated-sub-topics/popular/:code", cfg.TopicHandler.ListPopularCurated)
    api.GET("/curated-sub-topics/:id", cfg.TopicHandler.GetCuratedSubTopic)

    // LLM generation
    api.POST("/sub-topics/generate", cfg.GenerationHandler.Generate)
    api.GET("/sub-topics/generation-requests", cfg.GenerationHandler.ListRequests)
    api.GET("/sub-topics/generation-requests/:id", cfg.GenerationHandler.GetRequest)
    api.GET("/sub-topics/generated", cfg.GenerationHandler.ListGeneratedSubTopics)
    api.GET("/sub-topics/generated/:id", cfg.GenerationHandler.GetGeneratedSubTopic)
    api.DELETE("/sub-topics/generated/:id", cfg.GenerationHandler.DeleteGeneratedSubTopic)
  }

  return router
}

// SplitOrigins parses a comma separated CORS origin list from config.
func SplitOrigins(raw string) []string {
  if raw == "" {
    return nil
  }
  parts := strings.Split(raw, ",")
  origins := make([]string, 0, len(parts))
  for _, p := range parts {
    if trimmed := strings.TrimSpace(p); trimmed != "" {
      origins = append(origins, trimmed)
    }
  }
  return origins
}

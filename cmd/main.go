package main

import (
  "context"
  "fmt"
  "os"

  "github.com/joho/godotenv"

  "github.com/als8921/InfoU-backend/internal/db"
  "github.com/als8921/InfoU-backend/internal/handlers"
  "github.com/als8921/InfoU-backend/internal/logger"
  "github.com/als8921/InfoU-backend/internal/repos"
  "github.com/als8921/InfoU-backend/internal/server"
  "github.com/als8921/InfoU-backend/internal/services"
  "github.com/als8921/InfoU-backend/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Store
  storeService, err := db.NewStoreService(log)
  if err != nil {
    log.Error("Store init failed", "error", err)
    os.Exit(1)
  }
  if err := storeService.AutoMigrateAll(); err != nil {
    log.Error("Store auto migration failed", "error", err)
    os.Exit(1)
  }
  theDB := storeService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  mainTopicRepo := repos.NewMainTopicRepo(theDB, log)
  subTopicRepo := repos.NewSubTopicRepo(theDB, log)
  pathRepo := repos.NewLearningPathRepo(theDB, log)
  itemRepo := repos.NewCurriculumItemRepo(theDB, log)
  articleRepo := repos.NewArticleRepo(theDB, log)
  readRepo := repos.NewArticleReadRepo(theDB, log)
  levelRepo := repos.NewLevelRepo(theDB, log)
  userRepo := repos.NewUserRepo(theDB, log)
  requestRepo := repos.NewGenerationRequestRepo(theDB, log)
  generatedRepo := repos.NewGeneratedSubTopicRepo(theDB, log)
  curatedRepo := repos.NewCuratedSubTopicRepo(theDB, log)

  if err := storeService.SeedLevels(context.Background(), levelRepo); err != nil {
    log.Warn("Level seeding failed", "error", err)
  }
  if err := storeService.SeedSampleTopics(context.Background(), mainTopicRepo, curatedRepo, levelRepo); err != nil {
    log.Warn("Sample topic seeding failed", "error", err)
  }

  // Services
  log.Info("Setting up services from main...")
  llmClient, err := services.NewGeminiClient(log)
  if err != nil {
    log.Error("Could not init GeminiClient", "error", err)
    os.Exit(1)
  }
  idGenerator := services.NewIDGenerator()

  navigationService := services.NewNavigationService(log, articleRepo, itemRepo)
  readingService := services.NewReadingService(log, articleRepo, readRepo)
  generationService := services.NewGenerationService(theDB, log, mainTopicRepo, requestRepo, generatedRepo, llmClient)
  topicService := services.NewTopicService(log, mainTopicRepo, subTopicRepo, curatedRepo, levelRepo)
  pathService := services.NewPathService(theDB, log, subTopicRepo, pathRepo, itemRepo, idGenerator)
  levelService := services.NewLevelService(log, levelRepo)
  userService := services.NewUserService(log, userRepo)

  // Handlers
  log.Info("Setting up handlers from main...")
  articleHandler := handlers.NewArticleHandler(navigationService, readingService)
  userHandler := handlers.NewUserHandler(userService, readingService)
  topicHandler := handlers.NewTopicHandler(topicService)
  pathHandler := handlers.NewPathHandler(pathService)
  levelHandler := handlers.NewLevelHandler(levelService)
  generationHandler := handlers.NewGenerationHandler(generationService)

  // Router
  log.Info("Setting up router from main...")
  corsOrigins := server.SplitOrigins(utils.GetEnv("CORS_ORIGINS", "", log))
  router := server.NewRouter(server.RouterConfig{
    CORSOrigins:       corsOrigins,
    ArticleHandler:    articleHandler,
    UserHandler:       userHandler,
    TopicHandler:      topicHandler,
    PathHandler:       pathHandler,
    LevelHandler:      levelHandler,
    GenerationHandler: generationHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  log.Info("Server listening", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}

package main

import (
	"log"
	"net/http"
	"os"
	"regexp"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hiredai/config"
	"hiredai/routes"
	"hiredai/services"
	"hiredai/utils"
)

// Preview deployments get dedicated hostnames; allow them alongside the
// configured origins.
var previewOriginPattern = regexp.MustCompile(`^https://[a-z0-9-]+\.vercel\.app$`)

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Log.Json, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Create the dataset directory so first-run deployments start clean.
	os.MkdirAll(cfg.Dataset.Dir, os.ModePerm)

	services.InitContentService(cfg.Dataset.Dir, logger)
	if err := services.InitAnswerService(cfg, logger); err != nil {
		logger.Fatal("failed to initialize answer service", zap.Error(err))
	}
	routes.SetLearningLogger(logger)

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	logger.Info("server starting",
		zap.String("port", port),
		zap.String("dataset_dir", cfg.Dataset.Dir),
		zap.Bool("openai", cfg.Openai.ApiKey != ""),
		zap.Bool("gemini", cfg.Gemini.ApiKey != ""))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Frontend.Origins,
		AllowOriginFunc:  previewOriginPattern.MatchString,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", routes.HealthRouteHandler)
		api.GET("/check-data", routes.CheckDataRouteHandler)
		api.POST("/generate-answer", routes.GenerateAnswerRouteHandler)
		api.POST("/predict-learning-path", routes.PredictLearningPathRouteHandler)
		api.GET("/learning-path/:courseName", routes.LearningPathRouteHandler)
		api.POST("/admin/create-user", routes.CreateUserRouteHandler)
	}

	// Raw dataset files, read-only.
	router.StaticFS("/ai_datasets", http.Dir(cfg.Dataset.Dir))

	// Declared last: unknown /api routes 404, everything else falls
	// through to the frontend build.
	router.NoRoute(routes.SPAFallbackHandler(cfg.Frontend.Dist))

	return router
}

/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/answer-engine/config"
	"github.com/tieubaoca/answer-engine/database"
	"github.com/tieubaoca/answer-engine/handler"
	"github.com/tieubaoca/answer-engine/middleware"
	"github.com/tieubaoca/answer-engine/pkg/logger"
	"github.com/tieubaoca/answer-engine/repository"
	"github.com/tieubaoca/answer-engine/service"
	"go.uber.org/zap"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the support widget server",
	Long:  `Starts the HTTP and websocket server that answers support questions.`,
	Run: func(cmd *cobra.Command, args []string) {

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := logger.Init("info"); err != nil {
			log.Fatalf("Failed to init logger: %v", err)
		}
		defer logger.Sync()
		zl := logger.Get()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			zl.Fatal("failed to connect to mongo", zap.Error(err))
		}
		db := mongoClient.Database(cfg.DBName)

		// Repositories
		noteRepo := repository.NewKnowledgeRepo(db.Collection("knowledge_notes"))
		promptRepo := repository.NewPromptRepo(db.Collection("system_prompts"))
		conversationRepo := repository.NewConversationRepo(db.Collection("conversation_logs"))
		tokenRepo := repository.NewTokenRepo(db.Collection("commerce_tokens"))

		// Completion provider
		var ai service.AIService
		switch cfg.AIProvider {
		case "gemini":
			gemini, err := service.NewGeminiService(cfg.GeminiAPIKeys, cfg.Model)
			if err != nil {
				zl.Fatal("failed to init gemini provider", zap.Error(err))
			}
			ai = gemini
		default:
			ai = service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model, cfg.FilterModel)
		}

		// Services
		knowledgeService := service.NewKnowledgeService(noteRepo, promptRepo, zl)
		if err := knowledgeService.Reload(ctx); err != nil {
			// Seeds still answer; the corpus loads on the next reload.
			zl.Warn("initial corpus load failed, serving seeds only", zap.Error(err))
		}

		commerceService := service.NewCommerceService(cfg.Commerce, tokenRepo, zl)
		if err := commerceService.LoadTokens(ctx); err != nil {
			zl.Warn("commerce tokens unavailable, order lookups degraded", zap.Error(err))
		}

		retriever := service.NewRetriever(service.NewIntentClassifier(), service.RetrieverConfig{
			TopK:         cfg.Retrieval.TopK,
			MinScore:     cfg.Retrieval.MinScore,
			AnswerWeight: cfg.Retrieval.AnswerWeight,
		})
		recommendService := service.NewRecommendService(commerceService, ai, zl, service.RecommendConfig{
			Temperature:       cfg.RecommendTemperature,
			CompletionTimeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		})
		clarifications := service.NewClarificationStore()
		ruleEngine := service.NewRuleEngine(commerceService, recommendService, clarifications, zl)
		arbiter := service.NewArbiter(ruleEngine, knowledgeService, retriever, ai, conversationRepo, zl, service.ArbiterConfig{
			AnswerTemperature: cfg.AnswerTemperature,
			CompletionTimeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		})
		documentService := service.NewDocumentService(cfg.Chunk.Size)
		transcriptService := service.NewTranscriptService(conversationRepo)
		websocketService := service.NewWebSocketService(arbiter, zl)

		var imageHost service.ImageHost
		if cfg.FTP.Host != "" {
			imageHost = service.NewFTPImageHost(cfg.FTP, zl)
		}

		// Handlers
		corsHandler := handler.NewCorsHandler()
		chatHandler := handler.NewChatHandler(arbiter)
		recommendHandler := handler.NewRecommendHandler(recommendService)
		knowledgeHandler := handler.NewKnowledgeHandler(noteRepo, knowledgeService, imageHost, zl)
		learnHandler := handler.NewLearnHandler(documentService, noteRepo, promptRepo, knowledgeService, cfg.UploadDir, zl)
		transcriptHandler := handler.NewTranscriptHandler(transcriptService, zl)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/chat", chatHandler.HandleChat)
			apiV1.POST("/recommend", recommendHandler.HandleRecommend)
			apiV1.GET("/ws/chat", gin.WrapF(websocketService.HandleChat))
		}

		adminRoutes := router.Group("/admin/api/v1")
		adminRoutes.Use(middleware.AdminAuthMiddleware)
		{
			adminRoutes.GET("/knowledge", knowledgeHandler.HandlePaginate)
			adminRoutes.POST("/knowledge", knowledgeHandler.HandleCreate)
			adminRoutes.PUT("/knowledge/:id", knowledgeHandler.HandleUpdate)
			adminRoutes.DELETE("/knowledge/:id", knowledgeHandler.HandleDelete)
			adminRoutes.POST("/knowledge/image", knowledgeHandler.HandleUploadImage)
			adminRoutes.POST("/learn/document", learnHandler.HandleUploadDocument)
			adminRoutes.POST("/learn/persona", learnHandler.HandlePersona)
			adminRoutes.GET("/transcripts/export", transcriptHandler.HandleExport)
		}

		zl.Info("starting server", zap.String("port", cfg.Port))
		if err := router.Run(":" + cfg.Port); err != nil {
			zl.Fatal("server error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}

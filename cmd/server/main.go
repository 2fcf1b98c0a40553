// Package main is the entry point of the Vaccine Village server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaccine-village-go/internal/config"
	"vaccine-village-go/internal/handler"
	"vaccine-village-go/internal/middleware"
	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/pipeline"
	"vaccine-village-go/internal/repository"
	"vaccine-village-go/internal/service"
	"vaccine-village-go/pkg/database"
	"vaccine-village-go/pkg/es"
	"vaccine-village-go/pkg/hash"
	"vaccine-village-go/pkg/kafka"
	"vaccine-village-go/pkg/llm"
	"vaccine-village-go/pkg/log"
	"vaccine-village-go/pkg/phone"
	"vaccine-village-go/pkg/responder"
	"vaccine-village-go/pkg/storage"
	"vaccine-village-go/pkg/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// 1. config
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. logger
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("Logger initialized")

	// 3. datastores
	if err := database.InitMySQL(cfg.Database.MySQL.DSN, &model.User{}, &model.Review{}, &model.Feedback{}); err != nil {
		log.Fatal("MySQL init failed", err)
	}
	if err := database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB); err != nil {
		log.Fatal("Redis init failed", err)
	}

	bgCtx, cancelBg := context.WithCancel(context.Background())
	defer cancelBg()

	// 4. response content
	catalog := responder.DefaultCatalog()
	if cfg.Chatbot.ContentPath != "" {
		loaded, err := responder.LoadCatalogFile(cfg.Chatbot.ContentPath)
		if err != nil {
			log.Fatal("Failed to load response catalog", err)
		}
		catalog = loaded
		log.Infof("Loaded response catalog from %s", cfg.Chatbot.ContentPath)
	}

	// 5. repositories
	userRepo := repository.NewUserRepository(database.DB)
	reviewRepo := repository.NewReviewRepository(database.DB)
	feedbackRepo := repository.NewFeedbackRepository(database.DB)
	conversationRepo := repository.NewConversationRepository(database.RDB, cfg.Chatbot.HistoryLimit, cfg.Chatbot.HistoryTTL)
	preferenceRepo := repository.NewPreferenceRepository(database.RDB)
	bookmarkRepo := repository.NewBookmarkRepository(database.RDB)
	statsRepo := repository.NewStatsRepository(database.RDB)
	blacklist := repository.NewTokenBlacklistRepository(database.RDB)

	seedAdmin(userRepo, cfg.Admin)

	// 6. responder backend
	chatResponder := responder.New(catalog, responder.WithDelay(cfg.Chatbot.ResponseDelay))
	backend := service.BackendCanned
	if cfg.Chatbot.Backend == service.BackendLLM {
		// nil fallback: canned answers without the simulated delay
		chatResponder = service.NewLiveResponder(llm.NewClient(cfg.LLM), catalog, nil)
		backend = service.BackendLLM
	}
	log.Infof("Chat backend: %s", backend)

	// 7. chat events
	var publisher service.EventPublisher = service.NopPublisher
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka)
		publisher = producer
		go kafka.StartConsumer(bgCtx, cfg.Kafka, pipeline.NewProcessor(statsRepo), statsRepo)
	}

	// 8. resource search and offline bundles
	var indexer service.ResourceIndexer
	if index, err := es.NewResourceIndex(cfg.Elasticsearch); err != nil {
		log.Warnw("Elasticsearch unavailable, resource search falls back to local matching", "error", err)
	} else {
		indexer = index
	}
	resourceService := service.NewResourceService(indexer, cfg.Elasticsearch.CacheTTL)
	if indexer != nil {
		if err := resourceService.Seed(bgCtx); err != nil {
			log.Error("Failed to seed resource index", err)
		}
	}

	bundleStore, err := storage.NewBundleStore(bgCtx, cfg.MinIO)
	if err != nil {
		log.Fatal("MinIO init failed", err)
	}

	// 9. services
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours, cfg.JWT.RefreshTokenExpireDays)
	userService := service.NewUserService(userRepo, blacklist, jwtManager)
	conversationService := service.NewConversationService(conversationRepo)
	chatService := service.NewChatService(chatResponder, catalog, backend, conversationRepo, preferenceRepo, publisher)
	preferenceService := service.NewPreferenceService(preferenceRepo, catalog)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, resourceService, conversationService)
	reviewService := service.NewReviewService(reviewRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	offlineService := service.NewOfflineService(catalog, resourceService, bundleStore, preferenceRepo)
	adminService := service.NewAdminService(userRepo, conversationRepo, statsRepo)

	// 10. router
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	authMiddleware := middleware.AuthMiddleware(jwtManager, userService, blacklist)
	userHandler := handler.NewUserHandler(userService)
	chatHandler := handler.NewChatHandler(chatService, userService, jwtManager, blacklist)
	conversationHandler := handler.NewConversationHandler(conversationService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	resourceHandler := handler.NewResourceHandler(resourceService, catalog)
	adminHandler := handler.NewAdminHandler(adminService, reviewService, feedbackService)

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/refreshToken", handler.NewAuthHandler(userService).RefreshToken)
		}

		users := apiV1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)

			authed := users.Group("/")
			authed.Use(authMiddleware)
			{
				authed.GET("/me", userHandler.GetProfile)
				authed.POST("/logout", userHandler.Logout)
			}
		}

		// public content
		apiV1.GET("/languages", resourceHandler.Languages)
		apiV1.GET("/resources", resourceHandler.List)
		apiV1.GET("/resources/:id", resourceHandler.Get)

		chat := apiV1.Group("/chat")
		chat.Use(authMiddleware)
		{
			chat.POST("/messages", chatHandler.SendMessage)
		}

		conversation := apiV1.Group("/users/conversation")
		conversation.Use(authMiddleware)
		{
			conversation.GET("", conversationHandler.GetConversations)
			conversation.DELETE("", conversationHandler.ClearConversation)
		}

		preferences := apiV1.Group("/preferences")
		preferences.Use(authMiddleware)
		{
			preferences.GET("", preferenceHandler.Get)
			preferences.PATCH("", preferenceHandler.Update)
		}

		bookmarks := apiV1.Group("/bookmarks")
		bookmarks.Use(authMiddleware)
		{
			bookmarks.GET("/resources", bookmarkHandler.ListResources)
			bookmarks.POST("/resources/:id", bookmarkHandler.ToggleResource)
			bookmarks.GET("/messages", bookmarkHandler.ListMessages)
			bookmarks.POST("/messages", bookmarkHandler.AddMessage)
			bookmarks.DELETE("/messages/:id", bookmarkHandler.RemoveMessage)
		}

		reviews := apiV1.Group("/reviews")
		reviews.Use(authMiddleware)
		{
			reviews.GET("", reviewHandler.List)
			reviews.POST("", reviewHandler.Create)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}

		apiV1.POST("/feedback", authMiddleware, handler.NewFeedbackHandler(feedbackService).Submit)
		apiV1.GET("/offline/:language", authMiddleware, handler.NewOfflineHandler(offlineService).Prepare)

		admin := apiV1.Group("/admin")
		admin.Use(authMiddleware, middleware.AdminAuthMiddleware())
		{
			admin.GET("/users/list", adminHandler.ListUsers)
			admin.GET("/conversation", adminHandler.GetAllConversations)
			admin.GET("/stats", adminHandler.GetStats)
			admin.DELETE("/reviews/:id", adminHandler.DeleteReview)
			admin.GET("/feedback", adminHandler.ListFeedback)
		}
	}
	r.GET("/chat/:token", chatHandler.Handle)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", err)
	}

	// stop the consumer loop before closing the writer it feeds from
	cancelBg()
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("Failed to close Kafka producer", err)
		}
	}
	log.Info("Server stopped")
}

// seedAdmin creates the configured administrator if it does not exist yet.
func seedAdmin(userRepo repository.UserRepository, adminCfg config.AdminConfig) {
	if adminCfg.Phone == "" || adminCfg.Password == "" {
		return
	}
	normalized := phone.NormalizeKenyan(adminCfg.Phone)
	if _, err := userRepo.FindByPhone(normalized); err == nil {
		log.Infof("seedAdmin: administrator %s already exists, skipping", normalized)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("seedAdmin: failed to look up administrator", err)
		return
	}

	hashed, err := hash.HashPassword(adminCfg.Password)
	if err != nil {
		log.Error("seedAdmin: failed to hash password", err)
		return
	}
	admin := &model.User{
		Phone:    normalized,
		Name:     adminCfg.Name,
		Password: hashed,
		Role:     model.RoleNameAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Error("seedAdmin: failed to create administrator", err)
		return
	}
	log.Infof("seedAdmin: created administrator %s", normalized)
}

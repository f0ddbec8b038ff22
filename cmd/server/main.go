package main

import (
	"log"

	"github.com/brunofarias/zapboard/internal/config"
	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/brunofarias/zapboard/internal/database"
	"github.com/brunofarias/zapboard/internal/handlers"
	"github.com/brunofarias/zapboard/internal/logger"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/repository"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize structured logging
	if err := logger.Init(cfg.GinMode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Warn about missing integration credentials; the server still starts
	cfg.Validate(logger.L())

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)
	contactRepo := repository.NewContactRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Outbound messaging
	sender := services.NewWhatsAppService(cfg.WhatsAppAPIURL, cfg.FBToken, cfg.WhatsAppDryRun)

	// Initialize AI service
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Services
	authService := services.NewAuthService(userRepo)
	boardService := services.NewBoardService(boardRepo)
	columnService := services.NewColumnService(columnRepo, boardRepo)
	notificationService := services.NewNotificationService(templateRepo, activityRepo, sender)
	cardService := services.NewCardService(cardRepo, columnRepo, contactRepo, activityRepo, notificationService)
	contactService := services.NewContactService(contactRepo, cardRepo)
	templateService := services.NewTemplateService(templateRepo, columnRepo, boardRepo)
	activityService := services.NewActivityService(activityRepo, boardRepo, cardRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	boardHandler := handlers.NewBoardHandler(boardService)
	columnHandler := handlers.NewColumnHandler(columnService)
	cardHandler := handlers.NewCardHandler(cardService)
	contactHandler := handlers.NewContactHandler(contactService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	whatsAppHandler := handlers.NewWhatsAppHandler(cardService, notificationService)
	aiHandler := handlers.NewAIHandler(aiService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "ZapBoard API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Board routes (protected)
		boards := api.Group("/boards")
		boards.Use(middleware.RequireAuth())
		{
			boards.GET("", boardHandler.ListBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PUT("/:id", boardHandler.UpdateBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
			boards.GET("/:id/templates", templateHandler.ListForBoard)
		}

		// Column routes (protected)
		columns := api.Group("/columns")
		columns.Use(middleware.RequireAuth())
		{
			columns.POST("", columnHandler.CreateColumn)
			columns.PATCH("/:id", columnHandler.UpdateColumn)
			columns.DELETE("/:id", columnHandler.DeleteColumn)
			columns.GET("/:id/template", templateHandler.GetTemplate)
			columns.POST("/:id/template", templateHandler.CreateTemplate)
			columns.PUT("/:id/template", templateHandler.UpsertTemplate)
		}

		// Card routes (protected)
		cards := api.Group("/cards")
		cards.Use(middleware.RequireAuth())
		{
			cards.POST("", cardHandler.CreateCard)
			cards.GET("/:id", cardHandler.GetCard)
			cards.PATCH("/:id", cardHandler.UpdateCard)
			cards.DELETE("/:id", cardHandler.DeleteCard)
			cards.GET("/:id/activities", activityHandler.ListCardActivities)
		}

		// Contact routes (protected)
		contacts := api.Group("/contacts")
		contacts.Use(middleware.RequireAuth())
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
		}
		api.GET("/countries", middleware.RequireAuth(), contactHandler.ListCountries)

		// WhatsApp routes (protected)
		whatsapp := api.Group("/whatsapp")
		whatsapp.Use(middleware.RequireAuth())
		{
			whatsapp.POST("/notify", whatsAppHandler.Notify)
			whatsapp.POST("/test", whatsAppHandler.Test)
		}

		// AI routes (protected)
		api.POST("/ai/improve-template", middleware.RequireAuth(), aiHandler.ImproveTemplate)

		// Activity log routes (protected)
		api.GET("/activity-logs", middleware.RequireAuth(), activityHandler.ListLogs)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

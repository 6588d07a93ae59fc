package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vke007/jarvis-private/internal/config"
	"github.com/vke007/jarvis-private/internal/database"
	"github.com/vke007/jarvis-private/internal/handlers"
	"github.com/vke007/jarvis-private/internal/middleware"
	"github.com/vke007/jarvis-private/internal/repository"
	"github.com/vke007/jarvis-private/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	db := database.GetDB()
	guestRepo := repository.NewGuestRepository(db)
	resetRepo := repository.NewResetRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Services
	mailer := services.NewSMTPMailer(cfg)
	settingsService := services.NewSettingsService(settingRepo)
	authService := services.NewAuthService(cfg, guestRepo, resetRepo, mailer)
	guestService := services.NewGuestService(cfg, guestRepo)
	aiService := services.NewAIService(cfg.OpenAIAPIKey, cfg.AITimeout)

	// Seed safety and theme defaults
	if err := settingsService.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	guestHandler := handlers.NewGuestHandler(guestService)
	taskHandler := handlers.NewTaskHandler()
	eventHandler := handlers.NewEventHandler()
	noteHandler := handlers.NewNoteHandler()
	healthHandler := handlers.NewHealthHandler()
	dashboardHandler := handlers.NewDashboardHandler()
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	chatHandler := handlers.NewChatHandler(aiService, settingsService)

	// Guards
	secret := []byte(cfg.SecretKey)
	requireAuth := middleware.RequireAuth(secret)
	requireOwner := middleware.RequireOwner(secret)

	// Initialize Gin router
	r := gin.Default()
	r.Use(cors.Default())

	// API routes
	api := r.Group("/api")
	{
		// Liveness (public)
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok", "app": "JARVIS"})
		})

		// Auth routes (public except verify)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/verify", requireAuth, authHandler.Verify)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Guest accounts (owner only)
		users := api.Group("/users")
		users.Use(requireOwner)
		{
			users.GET("", guestHandler.ListGuests)
			users.POST("", guestHandler.CreateGuest)
			users.PUT("/:id", guestHandler.UpdateGuest)
			users.DELETE("/:id", guestHandler.DeleteGuest)
		}

		// Tasks
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Calendar events
		events := api.Group("/events")
		events.Use(requireAuth)
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		// Notes
		notes := api.Group("/notes")
		notes.Use(requireAuth)
		{
			notes.GET("", noteHandler.ListNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		// Health logs
		api.GET("/health/today", requireAuth, healthHandler.GetToday)
		api.POST("/health", requireAuth, healthHandler.UpdateToday)

		// Dashboard summary
		api.GET("/dashboard", requireAuth, dashboardHandler.GetDashboard)

		// Safety toggles (write open to any authenticated caller)
		api.GET("/safety", requireAuth, settingsHandler.GetSafety)
		api.POST("/safety", requireAuth, settingsHandler.UpdateSafety)

		// Theme (owner-only writes) and logo upload
		api.GET("/theme", requireAuth, settingsHandler.GetTheme)
		api.POST("/theme", requireOwner, settingsHandler.UpdateTheme)
		api.POST("/logo", requireOwner, settingsHandler.UploadLogo)

		// AI chat and code generation
		api.POST("/chat", requireAuth, chatHandler.Chat)
		api.GET("/chat/history", requireAuth, chatHandler.History)
		api.DELETE("/chat/history", requireAuth, chatHandler.ClearHistory)
		api.POST("/code", requireAuth, chatHandler.GenerateCode)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

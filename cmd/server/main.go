package main

import (
	"log"

	"github.com/books-app/backend/internal/cache"
	"github.com/books-app/backend/internal/config"
	"github.com/books-app/backend/internal/database"
	"github.com/books-app/backend/internal/handler"
	"github.com/books-app/backend/internal/mailer"
	"github.com/books-app/backend/internal/middleware"
	"github.com/books-app/backend/internal/repository"
	"github.com/books-app/backend/internal/service"
	"github.com/books-app/backend/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Initialize Redis cache
	redisCache, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to initialize Redis cache: %v", err)
	}
	defer redisCache.Close()

	// Outbound mail
	smtpMailer := mailer.NewSMTPMailer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword, cfg.Domain)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	verifRepo := repository.NewVerificationRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, verifRepo, redisCache, smtpMailer, cfg.JWTSecret)
	bookService := service.NewBookService(bookRepo, userRepo, redisCache)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)

	// Setup Gin router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))

	rateLimiter := middleware.NewRateLimiter(redisCache.Client(), middleware.RateLimiterConfig{
		MaxRequests: cfg.RateLimitMaxRequests,
		Window:      cfg.RateLimitWindow,
	})

	authRequired := middleware.AuthMiddleware(cfg.JWTSecret)

	books := router.Group("/books")
	{
		books.GET("", bookHandler.List)
		books.GET("/:id", bookHandler.Get)
		books.POST("", authRequired, bookHandler.Create)
		books.PUT("/:id", authRequired, bookHandler.Update)
		books.DELETE("/:id", authRequired, bookHandler.Delete)
	}

	users := router.Group("/users")
	{
		users.POST("/register", rateLimiter.Middleware(), userHandler.Register)
		users.POST("/login", rateLimiter.Middleware(), userHandler.Login)
		users.GET("/verify", userHandler.Verify)
		users.GET("/me", authRequired, userHandler.Me)
		users.PUT("/:id/role", authRequired, userHandler.PromoteRole)
	}

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

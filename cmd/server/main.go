package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookswap/bookswap/internal/api"
	"github.com/bookswap/bookswap/internal/auth"
	"github.com/bookswap/bookswap/internal/config"
	"github.com/bookswap/bookswap/internal/database"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	auth.InitJWTKey([]byte(cfg.JWTSecret))

	store, err := database.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := database.Migrate(store.DB); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("Connected to database, schema up to date")

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := api.NewAuthHandler(store)
	userHandler := api.NewUserHandler(store)
	bookHandler := api.NewBookHandler(store)
	exchangeHandler := api.NewExchangeHandler(store)
	chatHandler := api.NewChatHandler(store)
	notificationHandler := api.NewNotificationHandler(store)

	// Public routes
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Protected routes
	authorized := router.Group("/")
	authorized.Use(api.AuthMiddleware(store))
	{
		authorized.GET("/users/profile", userHandler.GetProfile)
		authorized.PUT("/users/profile", userHandler.UpdateProfile)
		authorized.GET("/users/:id", userHandler.GetUser)

		authorized.GET("/books", bookHandler.ListBooks)
		authorized.POST("/books", bookHandler.CreateBook)
		authorized.GET("/books/:id", bookHandler.GetBook)
		authorized.PUT("/books/:id", bookHandler.UpdateBook)
		authorized.DELETE("/books/:id", bookHandler.DeleteBook)

		authorized.POST("/exchanges/request", exchangeHandler.CreateRequest)
		authorized.POST("/exchanges/requests/:id/accept", exchangeHandler.AcceptRequest)
		authorized.POST("/exchanges/requests/:id/reject", exchangeHandler.RejectRequest)
		authorized.GET("/exchanges/requests", exchangeHandler.ListRequests)
		authorized.GET("/exchanges/history", exchangeHandler.History)
		authorized.GET("/exchanges/recent", exchangeHandler.Recent)

		authorized.GET("/chats", chatHandler.ListThreads)
		authorized.POST("/chats", chatHandler.OpenThread)
		authorized.GET("/chats/:threadId", chatHandler.GetMessages)
		authorized.POST("/chats/:threadId", chatHandler.PostMessage)

		authorized.GET("/notifications", notificationHandler.ListNotifications)
		authorized.POST("/notifications/:id/read", notificationHandler.MarkRead)
		authorized.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}

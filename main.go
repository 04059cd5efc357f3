package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"railway-booking/config"
	"railway-booking/database"
	"railway-booking/handlers"
	"railway-booking/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting Railway Booking System")

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Apply pending schema migrations
	if err := database.RunMigrations(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Setup Gin router
	router := setupRouter(cfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func setupRouter(cfg *config.Config) *gin.Engine {
	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.Identity(cfg.DefaultUserID))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Catalog routes
		api.GET("/stations", handlers.GetStations)
		api.GET("/trains", handlers.FilterTrains)
		api.GET("/trains/search", handlers.SearchTrains)
		api.GET("/trains/:id/pricing", handlers.GetRoutePricing)
		api.GET("/schedules", handlers.GetScheduleBoard)

		// Booking routes
		api.POST("/bookings", handlers.CreateBooking)
		api.GET("/bookings", handlers.GetUserBookings)

		// User routes
		api.POST("/users", handlers.CreateUser)
		api.GET("/users", handlers.GetUser)

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.GET("/trains", handlers.ListTrains)
			admin.POST("/trains", handlers.CreateTrain)
			admin.PUT("/trains/:id", handlers.UpdateTrain)
			admin.DELETE("/trains/:id", handlers.DeleteTrain)

			admin.GET("/schedules", handlers.ListAdminSchedules)
			admin.POST("/schedules", handlers.CreateSchedule)
			admin.PUT("/schedules/:id", handlers.UpdateSchedule)
			admin.DELETE("/schedules/:id", handlers.DeleteSchedule)

			admin.GET("/bookings", handlers.GetAdminBookings)
			admin.GET("/passengers", handlers.GetPassengers)
			admin.GET("/stats", handlers.GetStats)
			admin.GET("/analytics", handlers.GetAnalytics)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

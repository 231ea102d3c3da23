// File: befixed/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"befixed/config"
	"befixed/database"
	bookingRepo "befixed/database/repository/booking"
	technicianRepo "befixed/database/repository/technician"
	userRepoPkg "befixed/database/repository/user"
	"befixed/handlers"
	"befixed/middleware"
	"befixed/routes"
	"befixed/services/booking"
	"befixed/services/chatbot"
	"befixed/services/matching"
	"befixed/services/user"
	"befixed/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	techRepo := technicianRepo.NewMemoryTechnicianRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMemoryUserRepo()

	// services.
	catalog := chatbot.DefaultCatalog()
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	sessionStore := chatbot.NewRedisSessionStore(utils.GetChatSessionCacheClient(), sessionTTL)
	generator := chatbot.NewGenerator(catalog, rand.New(rand.NewSource(time.Now().UnixNano())))
	engine := chatbot.NewEngine(sessionStore, catalog, generator, logger)

	matcherService := &matching.DefaultMatcherService{Repo: techRepo}
	recorderService := &booking.DefaultRecorderService{Repo: bookRepo, Technician: techRepo}
	userService := &user.DefaultUserService{Repo: userRepo}

	chatbotHandler := handlers.NewChatbotHandler(engine, catalog, matcherService, recorderService, logger)
	authHandler := handlers.NewAuthHandler(userService, logger)

	routes.RegisterRoutes(router, chatbotHandler, authHandler, userRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetChatSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

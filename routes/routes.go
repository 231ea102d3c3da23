package routes

import (
	"net/http"
	"time"

	userRepo "befixed/database/repository/user"
	"befixed/handlers"
	"befixed/middleware"
	"befixed/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatbotRoutes registers the Felix dialogue endpoints.
func RegisterChatbotRoutes(r *gin.Engine, ch *handlers.ChatbotHandler, repo userRepo.UserRepository) {
	api := r.Group("/api/chatbot")
	{
		api.POST("/message", ch.ProcessMessage)
		api.GET("/services", ch.GetServices)
		api.POST("/select-service", ch.SelectService)
		api.POST("/select-urgency", ch.SelectUrgency)
		api.DELETE("/session/:sessionId", ch.ResetSession)

		// Technician search works with or without a token; booking and
		// history require one.
		api.POST("/find-technicians", middleware.OptionalAuthMiddleware(repo), ch.FindTechnicians)
		api.POST("/book-service", middleware.JWTAuthUserMiddleware(repo), ch.BookService)
		api.GET("/conversation-history", middleware.JWTAuthUserMiddleware(repo), ch.ConversationHistory)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, ah *handlers.AuthHandler, repo userRepo.UserRepository) {
	api := r.Group("/api/users")
	{
		api.POST("/register", ah.Register)
		api.POST("/login", ah.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(repo))
		api.GET("/profile", ah.Profile)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Felix",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ch *handlers.ChatbotHandler, ah *handlers.AuthHandler, repo userRepo.UserRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatbotRoutes(r, ch, repo)
	RegisterUserRoutes(r, ah, repo)
	RegisterHealthRoute(r)
}

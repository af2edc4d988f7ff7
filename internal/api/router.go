package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourname/fitcoach/internal/auth"
	"github.com/yourname/fitcoach/internal/config"
)

// NewRouter assembles the HTTP surface: CORS and request-ID middleware on
// everything, token auth on the chat routes.
func NewRouter(app App, provider auth.Provider, cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(RequestIDMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	chat := r.Group("/")
	chat.Use(auth.AuthMiddleware(provider, cfg))
	chat.POST("/chat", PostChat(app))
	chat.GET("/chat/history", GetChatHistory(app))
	chat.GET("/chat/profile", GetChatProfile(app))

	return r
}

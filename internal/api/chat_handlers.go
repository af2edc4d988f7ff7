package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/fitcoach/internal"
	"github.com/yourname/fitcoach/internal/service"
)

func PostChat(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req service.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		result, err := app.Chat().Respond(c.Request.Context(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Chat request rejected")
			return
		}

		HandleSuccess(c, app.Logger(), result, nil)
	}
}

func GetChatHistory(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			HandleError(c, app.Logger(), internal.NewAppError(400, "session_id query parameter required"), 400, "Missing session_id")
			return
		}

		turns, err := app.Chat().History(c.Request.Context(), sessionID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch history")
			return
		}

		HandleSuccess(c, app.Logger(), turns, map[string]any{"count": len(turns)})
	}
}

func GetChatProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			HandleError(c, app.Logger(), internal.NewAppError(400, "session_id query parameter required"), 400, "Missing session_id")
			return
		}

		profile, err := app.Chat().Profile(sessionID)
		if err != nil {
			HandleError(c, app.Logger(), err, 404, "No such session")
			return
		}

		HandleSuccess(c, app.Logger(), profile, nil)
	}
}

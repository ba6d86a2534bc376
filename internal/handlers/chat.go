package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mtnshop/internal/chat"
	"mtnshop/internal/middleware"
	"mtnshop/internal/models"
	"mtnshop/internal/store"
)

type chatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

/* =========================
   CHAT
========================= */

// SendChatMessage appends the user's message, asks the responder for a reply
// and appends that too. The responder itself never mutates anything.
func SendChatMessage(responder *chat.Responder, catalog *store.Catalog, ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /chat"
		defer handlePanic(c, route)

		var req chatMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			respondWithError(c, http.StatusBadRequest, route, "message required")
			return
		}

		sess := middleware.SessionFrom(c)
		sess.AppendMessage(models.RoleUser, message)

		reply := responder.Reply(message, chat.Context{
			Products:  catalog.Snapshot(),
			HasOrders: len(ledger.BySession(sess.ID)) > 0,
		})
		sess.AppendMessage(models.RoleAssistant, reply)

		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

func GetChatMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /chat"
		defer handlePanic(c, route)

		sess := middleware.SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"data": sess.Messages()})
	}
}

// ResetChat wipes the whole session, transcript included. This is the only
// way transcript entries ever disappear.
func ResetChat() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /chat/reset"
		defer handlePanic(c, route)

		sess := middleware.SessionFrom(c)
		sess.Reset()

		c.JSON(http.StatusOK, gin.H{"message": "session reset"})
	}
}

package middlewares

import (
	"net/http"

	"foodbot/utils"

	"github.com/gin-gonic/gin"
)

// WebAppAuthMiddleware validates the X-Telegram-Init-Data handshake. A
// missing or tampered signature leaves the caller unauthenticated; protected
// routes answer 401 rather than treating it as a server error.
func WebAppAuthMiddleware(botToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader("X-Telegram-Init-Data")
		if initData == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		parsed, ok := utils.ValidateInitData(initData, botToken)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		telegramID := utils.InitDataUserID(parsed)
		if telegramID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		c.Set("telegramId", telegramID)
		c.Next()
	}
}

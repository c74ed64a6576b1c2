package utils

import "github.com/gin-gonic/gin"

// CurrentTelegramID returns the telegram id placed in the context by the
// webapp auth middleware, or 0 when the request is unauthenticated.
func CurrentTelegramID(c *gin.Context) int64 {
	v, _ := c.Get("telegramId")
	switch id := v.(type) {
	case int64:
		return id
	case int:
		return int64(id)
	case float64:
		return int64(id)
	default:
		return 0
	}
}

package routes

import (
	"foodbot/controllers"
	"foodbot/middlewares"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the webapp JSON API. Catalog endpoints are public;
// everything touching a cart or an order requires the init-data handshake.
func RegisterRoutes(
	r *gin.Engine,
	botToken string,
	restCtrl *controllers.RestaurantController,
	cartCtrl *controllers.CartController,
	orderCtrl *controllers.OrderController,
) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	{
		api.GET("/restaurants", restCtrl.List)
		api.GET("/restaurants/:id/menu", restCtrl.Menu)
	}

	authed := api.Group("", middlewares.WebAppAuthMiddleware(botToken))
	{
		authed.POST("/cart/add", cartCtrl.Add)
		authed.GET("/cart", cartCtrl.Get)
		authed.DELETE("/cart/:itemId", cartCtrl.Remove)
		authed.POST("/orders", orderCtrl.Create)
		authed.GET("/orders", orderCtrl.List)
	}
}

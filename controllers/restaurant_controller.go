package controllers

import (
	"net/http"
	"strconv"

	"foodbot/pkg/resp"
	"foodbot/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	restaurants, err := h.Svc.ActiveRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, gin.H{
			"id":          r.ID,
			"name":        r.Name,
			"description": r.Description,
			"address":     r.Address,
			"image_url":   r.ImageURL,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	menu, err := h.Svc.Menu(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(menu))
	for _, cm := range menu {
		products := make([]gin.H, 0, len(cm.Products))
		for _, p := range cm.Products {
			products = append(products, gin.H{
				"id":            p.ID,
				"name":          p.Name,
				"description":   p.Description,
				"price":         p.Price,
				"price_display": p.PriceDisplay(),
				"image_url":     p.ImageURL,
				"is_available":  p.IsAvailable,
			})
		}
		out = append(out, gin.H{
			"id":       cm.Category.ID,
			"name":     cm.Category.Name,
			"products": products,
		})
	}
	c.JSON(http.StatusOK, out)
}

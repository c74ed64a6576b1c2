package controllers

import (
	"net/http"
	"strconv"

	"foodbot/entity"
	"foodbot/pkg/resp"
	"foodbot/services"
	"foodbot/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc   *services.CartService
	Users *services.UserService
}

func NewCartController(s *services.CartService, us *services.UserService) *CartController {
	return &CartController{Svc: s, Users: us}
}

func (h *CartController) currentUser(c *gin.Context) *entity.User {
	tgID := utils.CurrentTelegramID(c)
	if tgID == 0 {
		resp.Unauthorized(c, "unauthorized")
		return nil
	}
	u, err := h.Users.ByTelegramID(tgID)
	if err != nil {
		resp.ServerError(c, err)
		return nil
	}
	if u == nil {
		resp.NotFound(c, "user not found")
		return nil
	}
	return u
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	u := h.currentUser(c)
	if u == nil {
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == 0 {
		resp.BadRequest(c, "product_id required")
		return
	}

	item, err := h.Svc.AddItem(u.ID, req.ProductID, req.Quantity)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			resp.NotFound(c, err.Error())
		case services.ErrProductUnavailable, services.ErrAnotherRestaurant:
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         item.ID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	u := h.currentUser(c)
	if u == nil {
		return
	}

	lines, err := h.Svc.Items(u.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var total int64
	items := make([]gin.H, 0, len(lines))
	for _, l := range lines {
		total += l.Subtotal()
		items = append(items, gin.H{
			"id":            l.Item.ID,
			"product_name":  l.Product.Name,
			"product_price": l.Product.Price,
			"quantity":      l.Item.Quantity,
			"subtotal":      l.Subtotal(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// DELETE /api/cart/:itemId
func (h *CartController) Remove(c *gin.Context) {
	u := h.currentUser(c)
	if u == nil {
		return
	}

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	removed, err := h.Svc.RemoveItem(uint(itemID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !removed {
		resp.NotFound(c, "item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

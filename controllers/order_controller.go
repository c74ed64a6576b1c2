package controllers

import (
	"errors"
	"net/http"

	"foodbot/entity"
	"foodbot/pkg/resp"
	"foodbot/services"
	"foodbot/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc   *services.OrderService
	Users *services.UserService
}

func NewOrderController(s *services.OrderService, us *services.UserService) *OrderController {
	return &OrderController{Svc: s, Users: us}
}

func (h *OrderController) currentUser(c *gin.Context) *entity.User {
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

// POST /api/orders commits the cart; it is cleared and the user's saved
// contact info refreshed on success.
func (h *OrderController) Create(c *gin.Context) {
	u := h.currentUser(c)
	if u == nil {
		return
	}

	var req struct {
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" || req.Phone == "" {
		resp.BadRequest(c, "address and phone required")
		return
	}

	order, err := h.Svc.Checkout(u.ID, req.Address, req.Phone, req.Comment)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     order.ID,
		"status": order.Status,
		"total":  order.Total,
	})
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	u := h.currentUser(c)
	if u == nil {
		return
	}

	orders, err := h.Svc.OrdersForUser(u.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		items, err := h.Svc.ItemsOf(o.ID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		lineOut := make([]gin.H, 0, len(items))
		for _, it := range items {
			lineOut = append(lineOut, gin.H{
				"product_id": it.ProductID,
				"quantity":   it.Quantity,
				"price":      it.Price,
			})
		}
		out = append(out, gin.H{
			"id":            o.ID,
			"status":        o.Status,
			"total":         o.Total,
			"total_display": o.TotalDisplay(),
			"address":       o.DeliveryAddress,
			"created_at":    o.CreatedAt,
			"items":         lineOut,
		})
	}
	c.JSON(http.StatusOK, out)
}

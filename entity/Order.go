package entity

import (
	"gorm.io/gorm"
)

// Order is the committed snapshot of a cart. Everything except Status is
// frozen at creation time.
type Order struct {
	gorm.Model
	UserID       uint        `gorm:"index" json:"userId"`
	RestaurantID uint        `gorm:"index" json:"restaurantId"`
	Status       OrderStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	Total        int64       `json:"total"` // minor currency units

	DeliveryAddress string `json:"deliveryAddress"`
	Phone           string `json:"phone"`
	Comment         string `json:"comment"`
}

func (o Order) TotalDisplay() string {
	return FormatPrice(o.Total)
}

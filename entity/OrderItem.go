package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID   uint `gorm:"index" json:"orderId"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`

	// Price is the product price at order time. Later catalog edits never
	// touch it, so historical totals stay what the customer paid.
	Price int64 `json:"price"`
}

func (oi OrderItem) Subtotal() int64 {
	return oi.Price * int64(oi.Quantity)
}

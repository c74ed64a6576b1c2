package entity

import (
	"gorm.io/gorm"
)

// CartItem is the mutable pre-checkout line. One row per (user, product);
// adding the same product again raises Quantity instead of inserting.
type CartItem struct {
	gorm.Model
	UserID    uint `gorm:"uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int  `gorm:"default:1" json:"quantity"`
}

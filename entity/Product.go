package entity

import (
	"fmt"

	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor currency units
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
	CategoryID  uint   `gorm:"index" json:"categoryId"`
}

func (p Product) PriceDisplay() string {
	return FormatPrice(p.Price)
}

// FormatPrice renders minor currency units as "12.99".
func FormatPrice(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}

package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	TelegramID int64  `gorm:"uniqueIndex;not null" json:"telegramId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Username   string `json:"username"`

	// last-used contact info, reused as defaults on the next checkout
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"deliveryAddress"`
}

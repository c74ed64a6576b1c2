package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

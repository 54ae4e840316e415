package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	CategoryID  uint     `json:"categoryId" binding:"required"`
	Category    Category `json:"category" binding:"-"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"min=0"`
	Stock       int      `json:"stock" binding:"min=0"`
	ImageUrl    string   `json:"imageUrl"`
	IsActive    bool     `json:"isActive" gorm:"default:true"`
}

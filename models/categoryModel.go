package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string    `json:"name" binding:"required" gorm:"uniqueIndex;size:100"`
	Description string    `json:"description"`
	Products    []Product `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

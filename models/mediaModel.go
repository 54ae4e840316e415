package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ImageUpload struct {
	gorm.Model
	Url string `json:"url" binding:"required"`
}

type Recipe struct {
	gorm.Model
	Title        string         `json:"title" binding:"required"`
	ImageUrl     string         `json:"imageUrl"`
	Ingredients  datatypes.JSON `json:"ingredients"`
	Instructions datatypes.JSON `json:"instructions"`
	Benefits     string         `json:"benefits"`
}

// AboutVideo carries either an uploaded video URL or a YouTube id.
type AboutVideo struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoUrl    string `json:"videoUrl"`
	YoutubeID   string `json:"youtubeId"`
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"gorm.io/gorm"
)

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if err := initializers.DB.Find(&categories).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func GetCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Save(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Category{}, categoryId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		return
	}

	// Products cannot outlive their category.
	if err := initializers.DB.Where("category_id = ?", categoryId).Delete(&models.Product{}).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category products", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

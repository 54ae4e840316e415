package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// orderingClause maps the ordering query param onto a SQL order clause. Any
// value outside the closed set is ignored.
func orderingClause(param string) string {
	switch param {
	case "price":
		return "price"
	case "-price":
		return "price desc"
	case "created_at":
		return "created_at"
	case "-created_at":
		return "created_at desc"
	}
	return ""
}

// applyProductFilters narrows an active-product query by the search and
// ordering query params shared between product list endpoints. The ordering
// param replaces defaultOrder rather than stacking on top of it.
func applyProductFilters(ctx *gin.Context, query *gorm.DB, defaultOrder string) *gorm.DB {
	if search := ctx.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	order := orderingClause(ctx.Query("ordering"))
	if order == "" {
		order = defaultOrder
	}
	if order != "" {
		query = query.Order(order)
	}
	return query
}

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Validate category exists
	var category models.Category
	if err := initializers.DB.First(&category, product.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		}
		return
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}
	product.Category = category

	ctx.JSON(http.StatusCreated, product)
}

func GetProducts(ctx *gin.Context) {
	query := initializers.DB.
		Preload("Category").
		Where("is_active = ?", true)

	if categoryId := ctx.Query("category"); categoryId != "" {
		query = query.Where("category_id = ?", categoryId)
	}
	query = applyProductFilters(ctx, query, "created_at desc")

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.
		Preload("Category").
		Where("is_active = ?", true).
		First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", err)
		}
		return
	}

	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Validate category exists
	var category models.Category
	if err := initializers.DB.First(&category, product.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		}
		return
	}

	if err := initializers.DB.Save(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}
	product.Category = category

	ctx.JSON(http.StatusOK, product)
}

func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	result := initializers.DB.Delete(&models.Product{}, productId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// GetProductsByCategoryName lists active products in the named category. The
// literal name "all" (any case) bypasses the category filter. Category name
// matching is case-insensitive exact match.
func GetProductsByCategoryName(ctx *gin.Context) {
	categoryName := ctx.Param("name")

	query := initializers.DB.
		Preload("Category").
		Where("is_active = ?", true)

	if !strings.EqualFold(categoryName, "all") {
		var category models.Category
		err := initializers.DB.
			Where("LOWER(name) = LOWER(?)", categoryName).
			First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
			}
			return
		}
		query = query.Where("category_id = ?", category.ID)
	}

	query = applyProductFilters(ctx, query, "")

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

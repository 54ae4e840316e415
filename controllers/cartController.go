package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"gorm.io/gorm"
)

// CartLine is one cart entry as returned to the client. ID is what the client
// hands back to PUT/DELETE /cart/:id — the cart item id for authenticated
// carts, the product id for session carts.
type CartLine struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
	ImageUrl    string  `json:"image"`
	Description string  `json:"description"`
}

type CartView struct {
	Items      []CartLine `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

var errCartItemNotFound = errors.New("cart item not found")

// cartBackend is the single logical cart contract. Two representations back
// it: per-user persisted rows and the anonymous redis session blob. Nothing
// past cartBackendFor may depend on which one is in play.
//
// Add accumulates quantity on repeat adds; Update overwrites it. The two merge
// policies are deliberately separate operations.
type cartBackend interface {
	View() (CartView, error)
	Add(product models.Product, quantity int) error
	Update(pathKey, bodyProductKey string, quantity int) error
	Remove(pathKey, bodyProductKey string) error
}

func cartBackendFor(ctx *gin.Context) cartBackend {
	if userID, exists := ctx.Get("userID"); exists {
		return &userCartBackend{userID: userID.(uint)}
	}
	return &sessionCartBackend{ctx: ctx}
}

type cartItemInput struct {
	Product  uint `json:"product"`
	Quantity int  `json:"quantity"`
}

func GetCart(ctx *gin.Context) {
	view, err := cartBackendFor(ctx).View()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func AddToCart(ctx *gin.Context) {
	var input cartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.Product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	if err := cartBackendFor(ctx).Add(product, input.Quantity); err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to add item to cart", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
}

func UpdateCartItem(ctx *gin.Context) {
	// Quantity defaults to 1 only when absent; an explicit value, zero
	// included, is written through as-is.
	var input struct {
		Product  uint `json:"product"`
		Quantity *int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	err := cartBackendFor(ctx).Update(ctx.Param("id"), productKey(input.Product), quantity)
	if err != nil {
		if errors.Is(err, errCartItemNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Cart item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update cart item", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item updated"})
}

func RemoveCartItem(ctx *gin.Context) {
	// DELETE may carry an optional body naming the product; ignore bind errors.
	var input cartItemInput
	_ = ctx.ShouldBindJSON(&input)

	err := cartBackendFor(ctx).Remove(ctx.Param("id"), productKey(input.Product))
	if err != nil {
		if errors.Is(err, errCartItemNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Cart item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to remove cart item", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

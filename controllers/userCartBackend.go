package controllers

import (
	"errors"
	"strconv"

	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"gorm.io/gorm"
)

func productKey(productID uint) string {
	if productID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(productID), 10)
}

// userCartBackend keeps cart state as rows tied one-to-one to the user.
// Pricing is always live: subtotals re-read the product price at view time.
type userCartBackend struct {
	userID uint
}

// cart fetches the user's cart, creating it on first access.
func (b *userCartBackend) cart() (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", b.userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: b.userID}
		err = initializers.DB.Create(&cart).Error
	}
	return cart, err
}

// item looks a cart item up by id scoped to the caller's own cart. A foreign
// user's item id reads as not found.
func (b *userCartBackend) item(pathKey string) (models.CartItem, error) {
	itemId, err := strconv.Atoi(pathKey)
	if err != nil {
		return models.CartItem{}, errCartItemNotFound
	}

	cart, err := b.cart()
	if err != nil {
		return models.CartItem{}, err
	}

	var item models.CartItem
	err = initializers.DB.
		Where("id = ? AND cart_id = ?", itemId, cart.ID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, errCartItemNotFound
	}
	return item, err
}

func (b *userCartBackend) View() (CartView, error) {
	cart, err := b.cart()
	if err != nil {
		return CartView{}, err
	}

	var items []models.CartItem
	err = initializers.DB.
		Preload("Product").
		Where("cart_id = ?", cart.ID).
		Find(&items).Error
	if err != nil {
		return CartView{}, err
	}

	view := CartView{Items: []CartLine{}}
	for _, item := range items {
		if item.Product.ID == 0 {
			// Product deleted since it was added; drop the line.
			continue
		}
		subtotal := float64(item.Quantity) * item.Product.Price
		view.Items = append(view.Items, CartLine{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
			Subtotal:    subtotal,
			ImageUrl:    item.Product.ImageUrl,
			Description: item.Product.Description,
		})
		view.TotalItems += item.Quantity
		view.TotalPrice += subtotal
	}
	return view, nil
}

func (b *userCartBackend) Add(product models.Product, quantity int) error {
	cart, err := b.cart()
	if err != nil {
		return err
	}

	var item models.CartItem
	err = initializers.DB.
		Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).
		First(&item).Error
	if err == nil {
		item.Quantity += quantity
		return initializers.DB.Save(&item).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item = models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
	}
	return initializers.DB.Create(&item).Error
}

func (b *userCartBackend) Update(pathKey, _ string, quantity int) error {
	item, err := b.item(pathKey)
	if err != nil {
		return err
	}

	item.Quantity = quantity
	return initializers.DB.Save(&item).Error
}

func (b *userCartBackend) Remove(pathKey, _ string) error {
	item, err := b.item(pathKey)
	if err != nil {
		return err
	}

	return initializers.DB.Delete(&item).Error
}

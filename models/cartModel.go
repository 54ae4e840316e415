package models

import "gorm.io/gorm"

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	gorm.Model
	CartID    uint    `json:"cartId" gorm:"index:idx_cart_product,unique"`
	ProductID uint    `json:"productId" gorm:"index:idx_cart_product,unique"`
	Product   Product `json:"-"`
	Quantity  int     `json:"quantity"`
}

// SessionCartItem is one anonymous cart entry. Price is snapshotted when the
// product is first added, not re-read from the catalog.
type SessionCartItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// SessionCart is the anonymous cart blob stored in redis, keyed by product id.
type SessionCart map[string]SessionCartItem

// Add accumulates quantity for a product already in the cart, otherwise
// inserts a new entry with a price snapshot taken now.
func (c SessionCart) Add(productID, productName string, price float64, quantity int) {
	if item, ok := c[productID]; ok {
		item.Quantity += quantity
		c[productID] = item
		return
	}
	c[productID] = SessionCartItem{
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
	}
}

// SetQuantity overwrites the stored quantity. Reports whether the product was
// in the cart.
func (c SessionCart) SetQuantity(productID string, quantity int) bool {
	item, ok := c[productID]
	if !ok {
		return false
	}
	item.Quantity = quantity
	c[productID] = item
	return true
}

// Remove deletes the entry for a product. Reports whether it existed.
func (c SessionCart) Remove(productID string) bool {
	if _, ok := c[productID]; !ok {
		return false
	}
	delete(c, productID)
	return true
}

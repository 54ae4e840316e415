package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/miracle-naturals/miracle-api/initializers"
	"github.com/miracle-naturals/miracle-api/models"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	sessionCookieName = "cart_session"
	sessionCartTTL    = 7 * 24 * time.Hour
)

// sessionCartBackend keeps anonymous cart state as a JSON blob in redis keyed
// by a cookie-held session id. Prices are snapshotted when an item is first
// added; view totals use the snapshot, not the live catalog price.
type sessionCartBackend struct {
	ctx *gin.Context
}

func sessionCartKey(sessionID string) string {
	return "cart:" + sessionID
}

// sessionID reads the session cookie, minting a fresh id (and setting the
// cookie) when create is true and no session exists yet.
func (b *sessionCartBackend) sessionID(create bool) string {
	id, err := b.ctx.Cookie(sessionCookieName)
	if err == nil && id != "" {
		return id
	}
	if !create {
		return ""
	}
	id = uuid.NewString()
	b.ctx.SetCookie(sessionCookieName, id, int(sessionCartTTL.Seconds()), "/", "", false, true)
	return id
}

func (b *sessionCartBackend) load(sessionID string) (models.SessionCart, error) {
	cart := models.SessionCart{}
	if sessionID == "" {
		return cart, nil
	}

	data, err := initializers.Redis.Get(b.ctx.Request.Context(), sessionCartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return cart, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// save writes the blob back synchronously so the response never races the
// session store.
func (b *sessionCartBackend) save(sessionID string, cart models.SessionCart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return initializers.Redis.Set(b.ctx.Request.Context(),
		sessionCartKey(sessionID), data, sessionCartTTL).Err()
}

func (b *sessionCartBackend) View() (CartView, error) {
	cart, err := b.load(b.sessionID(false))
	if err != nil {
		return CartView{}, err
	}

	view := CartView{Items: []CartLine{}}
	for key, entry := range cart {
		productId, err := strconv.Atoi(key)
		if err != nil {
			continue
		}

		var product models.Product
		err = initializers.DB.First(&product, productId).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Product vanished since it was added; drop the entry silently.
			continue
		}
		if err != nil {
			return CartView{}, err
		}

		subtotal := entry.Price * float64(entry.Quantity)
		view.Items = append(view.Items, CartLine{
			ID:          uint(productId),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    entry.Quantity,
			Price:       entry.Price,
			Subtotal:    subtotal,
			ImageUrl:    product.ImageUrl,
			Description: product.Description,
		})
		view.TotalItems += entry.Quantity
		view.TotalPrice += subtotal
	}
	return view, nil
}

func (b *sessionCartBackend) Add(product models.Product, quantity int) error {
	sessionID := b.sessionID(true)

	cart, err := b.load(sessionID)
	if err != nil {
		return err
	}

	cart.Add(productKey(product.ID), product.Name, product.Price, quantity)
	return b.save(sessionID, cart)
}

// key resolves which product a mutation targets: an explicit product id in
// the body wins, the path parameter is the fallback.
func (b *sessionCartBackend) key(pathKey, bodyProductKey string) string {
	if bodyProductKey != "" {
		return bodyProductKey
	}
	return pathKey
}

func (b *sessionCartBackend) Update(pathKey, bodyProductKey string, quantity int) error {
	sessionID := b.sessionID(false)

	cart, err := b.load(sessionID)
	if err != nil {
		return err
	}

	if !cart.SetQuantity(b.key(pathKey, bodyProductKey), quantity) {
		return errCartItemNotFound
	}
	return b.save(sessionID, cart)
}

func (b *sessionCartBackend) Remove(pathKey, bodyProductKey string) error {
	sessionID := b.sessionID(false)

	cart, err := b.load(sessionID)
	if err != nil {
		return err
	}

	if !cart.Remove(b.key(pathKey, bodyProductKey)) {
		return errCartItemNotFound
	}
	return b.save(sessionID, cart)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Miracle Naturals API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/send-otp" - Send a verification code to an email
- POST "/verify-otp" - Verify an emailed code
- POST "/register" - Create user account (requires verified email)
- POST "/login" - Access user account
- POST "/token/refresh" - Refresh an access token
- POST "/logout" - Revoke a refresh token
- GET "/user" - Current user profile
- GET "/user-count" - Total and active user counts

CATALOG
- GET/POST "/categories" - List or create categories
- GET/PUT/DELETE "/categories/{id}" - Retrieve, update or delete a category
- GET/POST "/products" - List (filter, search, ordering) or create products
- GET/PUT/DELETE "/products/{id}" - Retrieve, update or delete a product
- GET "/products-by-category/{name}" - Products in a named category ("all" for every product)

CART
- GET "/cart" - View cart (works signed in or anonymous)
- POST "/cart" - Add item to cart
- PUT "/cart/{id}" - Update item quantity
- DELETE "/cart/{id}" - Remove item from cart

MEDIA
- GET "/get-all-images" - List uploaded images
- POST "/upload-image" - Upload gallery images
- GET/POST "/recipes" - List or create recipes
- GET/PUT/DELETE "/recipes/{id}" - Retrieve, update or delete a recipe
- GET/POST "/about-videos" - List or create about-page videos`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

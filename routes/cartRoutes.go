package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/controllers"
	"github.com/miracle-naturals/miracle-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.OptionalAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
		cart.PUT("/:id", controllers.UpdateCartItem)
		cart.DELETE("/:id", controllers.RemoveCartItem)
	}
}

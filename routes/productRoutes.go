package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/controllers"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/categories", controllers.GetCategories)
	server.POST("/categories", controllers.CreateCategory)
	server.GET("/categories/:id", controllers.GetCategory)
	server.PUT("/categories/:id", controllers.UpdateCategory)
	server.DELETE("/categories/:id", controllers.DeleteCategory)

	server.GET("/products", controllers.GetProducts)
	server.POST("/products", controllers.CreateProduct)
	server.GET("/products/:id", controllers.GetProduct)
	server.PUT("/products/:id", controllers.UpdateProduct)
	server.DELETE("/products/:id", controllers.DeleteProduct)

	server.GET("/products-by-category/:name", controllers.GetProductsByCategoryName)
}

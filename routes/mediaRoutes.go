package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/controllers"
)

func MediaRoutes(server *gin.Engine) {
	server.GET("/get-all-images", controllers.GetAllImages)
	server.POST("/upload-image", controllers.UploadImages)

	server.GET("/recipes", controllers.GetRecipes)
	server.POST("/recipes", controllers.CreateRecipe)
	server.GET("/recipes/:id", controllers.GetRecipe)
	server.PUT("/recipes/:id", controllers.UpdateRecipe)
	server.DELETE("/recipes/:id", controllers.DeleteRecipe)

	server.GET("/about-videos", controllers.GetAboutVideos)
	server.POST("/about-videos", controllers.CreateAboutVideo)
}

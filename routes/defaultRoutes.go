package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/controllers"
	"github.com/miracle-naturals/miracle-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	server.POST("/send-otp", controllers.SendOTP)
	server.POST("/verify-otp", controllers.VerifyOTP)
	server.POST("/register", controllers.Register)
	server.POST("/login", controllers.Login)
	server.POST("/token/refresh", controllers.RefreshToken)
	server.POST("/logout", controllers.Logout)
	server.GET("/user", middlewares.RequireAuth(), controllers.CurrentUser)
	server.GET("/user-count", controllers.UserCount)
}

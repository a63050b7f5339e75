package routes

import (
	"github.com/campuscanteen/canteen-api/controllers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/menu", controllers.GetMenu)
	server.GET("/menu/:id", controllers.GetMenuItem)

	admin := server.Group("/menu", middlewares.RequireAuth(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("", controllers.CreateMenuItem)
		admin.PATCH("/:id", controllers.UpdateMenuItem)
		admin.DELETE("/:id", controllers.DeleteMenuItem)
		admin.POST("/:id/image", controllers.UploadMenuItemImage)
	}
}

package routes

import (
	"github.com/campuscanteen/canteen-api/controllers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController) {
	group := server.Group("/orders", middlewares.RequireAuth())
	{
		group.GET("",
			middlewares.RequireRole(models.RoleStudent, models.RoleStaff),
			orders.GetMyOrders)
		group.GET("/all",
			middlewares.RequireRole(models.RoleAdmin),
			orders.GetAllOrders)
		group.PATCH("/:id/status",
			middlewares.RequireRole(models.RoleAdmin),
			orders.UpdateOrderStatus)
	}
}

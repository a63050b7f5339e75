package routes

import (
	"github.com/campuscanteen/canteen-api/controllers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, carts *controllers.CartController, orders *controllers.OrderController) {
	group := server.Group("/cart", middlewares.RequireAuth())
	{
		group.GET("", carts.GetCart)
		group.POST("", carts.AddCartItem)
		group.PATCH("/items/:menuId", carts.UpdateCartItem)
		group.DELETE("/items/:menuId", carts.RemoveCartItem)
		group.POST("/checkout",
			middlewares.RequireRole(models.RoleStudent, models.RoleStaff),
			orders.Checkout)
	}
}

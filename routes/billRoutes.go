package routes

import (
	"github.com/campuscanteen/canteen-api/controllers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/gin-gonic/gin"
)

func BillRoutes(server *gin.Engine) {
	group := server.Group("/bills", middlewares.RequireAuth())
	{
		group.GET("",
			middlewares.RequireRole(models.RoleStudent, models.RoleStaff),
			controllers.GetMyBills)
		group.POST("/:id/cancel",
			middlewares.RequireRole(models.RoleAdmin),
			controllers.CancelBill)
	}
}

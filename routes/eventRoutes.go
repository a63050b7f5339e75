package routes

import (
	"github.com/campuscanteen/canteen-api/controllers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/gin-gonic/gin"
)

func EventRoutes(server *gin.Engine, events *controllers.EventsController) {
	server.GET("/events", middlewares.RequireAuth(), events.Stream)
}

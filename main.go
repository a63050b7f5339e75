package main

import (
	"os"
	"time"

	"github.com/campuscanteen/canteen-api/cart"
	"github.com/campuscanteen/canteen-api/controllers"
	"github.com/campuscanteen/canteen-api/initializers"
	"github.com/campuscanteen/canteen-api/realtime"
	"github.com/campuscanteen/canteen-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()

	allowedOrigins := []string{"http://localhost:5173"}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		allowedOrigins = append(allowedOrigins, frontend)
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	hub := realtime.NewHub(os.Getenv("EVENT_WEBHOOK_URL"))
	carts := cart.NewStore()

	cartController := controllers.NewCartController(carts)
	orderController := controllers.NewOrderController(hub, carts)
	eventsController := controllers.NewEventsController(hub)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.MenuRoutes(server)
	routes.CartRoutes(server, cartController, orderController)
	routes.OrderRoutes(server, orderController)
	routes.BillRoutes(server)
	routes.EventRoutes(server, eventsController)

	server.Run()
}

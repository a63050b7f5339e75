package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/campuscanteen/canteen-api/cart"
	"github.com/campuscanteen/canteen-api/initializers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/campuscanteen/canteen-api/realtime"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTest swaps the global DB for a fresh in-memory SQLite database and
// returns a router wired like main.go.
func setupTest(t *testing.T) (*gin.Engine, *realtime.Hub, *cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Order{}, &models.OrderItem{}, &models.Bill{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	initializers.DB = db

	hub := realtime.NewHub("")
	carts := cart.NewStore()

	cartController := NewCartController(carts)
	orderController := NewOrderController(hub, carts)
	eventsController := NewEventsController(hub)

	server := gin.New()
	server.GET("/", GetHome)
	auth := server.Group("/auth")
	auth.POST("/signup", Signup)
	auth.POST("/login", Login)

	server.GET("/menu", GetMenu)
	server.GET("/menu/:id", GetMenuItem)
	adminMenu := server.Group("/menu", middlewares.RequireAuth(), middlewares.RequireRole(models.RoleAdmin))
	adminMenu.POST("", CreateMenuItem)
	adminMenu.PATCH("/:id", UpdateMenuItem)
	adminMenu.DELETE("/:id", DeleteMenuItem)

	cartGroup := server.Group("/cart", middlewares.RequireAuth())
	cartGroup.GET("", cartController.GetCart)
	cartGroup.POST("", cartController.AddCartItem)
	cartGroup.PATCH("/items/:menuId", cartController.UpdateCartItem)
	cartGroup.DELETE("/items/:menuId", cartController.RemoveCartItem)
	cartGroup.POST("/checkout",
		middlewares.RequireRole(models.RoleStudent, models.RoleStaff),
		orderController.Checkout)

	orderGroup := server.Group("/orders", middlewares.RequireAuth())
	orderGroup.GET("", middlewares.RequireRole(models.RoleStudent, models.RoleStaff), orderController.GetMyOrders)
	orderGroup.GET("/all", middlewares.RequireRole(models.RoleAdmin), orderController.GetAllOrders)
	orderGroup.PATCH("/:id/status", middlewares.RequireRole(models.RoleAdmin), orderController.UpdateOrderStatus)

	billGroup := server.Group("/bills", middlewares.RequireAuth())
	billGroup.GET("", middlewares.RequireRole(models.RoleStudent, models.RoleStaff), GetMyBills)
	billGroup.POST("/:id/cancel", middlewares.RequireRole(models.RoleAdmin), CancelBill)

	server.GET("/events", middlewares.RequireAuth(), eventsController.Stream)

	return server, hub, carts
}

// createTestUser inserts a user and returns it with a valid token.
func createTestUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()
	hashed, err := hashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Name:           name,
		Email:          email,
		Password:       hashed,
		Role:           role,
		RegisterNumber: "R-1001",
	}
	if err := initializers.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := generateJWT(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func createTestMenuItem(t *testing.T, name, category string, price int, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:      name,
		Category:  category,
		Price:     price,
		Available: &available,
	}
	if err := initializers.DB.Create(&item).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return item
}

func doRequest(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", recorder.Body.String(), err)
	}
}

func mustStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	if recorder.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", recorder.Code, want, recorder.Body.String())
	}
}

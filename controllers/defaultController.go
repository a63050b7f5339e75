package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Campus Canteen API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

MENU
- GET "/menu" - Get menu (optional ?category= filter)
- GET "/menu/{id}" - Get menu item by ID
- POST "/menu" - Create menu item (admin)
- PATCH "/menu/{id}" - Update menu item (admin)
- DELETE "/menu/{id}" - Delete menu item (admin)
- POST "/menu/{id}/image" - Upload menu item image (admin)

CART
- GET "/cart" - Get your cart
- POST "/cart" - Add item to cart
- PATCH "/cart/items/{menuId}" - Change item quantity
- DELETE "/cart/items/{menuId}" - Remove item from cart
- POST "/cart/checkout" - Place order and receive bill

ORDERS
- GET "/orders" - Get your orders
- GET "/orders/all" - Get all orders (admin)
- PATCH "/orders/{id}/status" - Update order status (admin)

BILLS
- GET "/bills" - Get your bills
- POST "/bills/{id}/cancel" - Cancel a bill (admin)

EVENTS
- GET "/events" - Live order/bill updates (SSE)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campuscanteen/canteen-api/cart"
	"github.com/campuscanteen/canteen-api/initializers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Store *cart.Store
}

func NewCartController(store *cart.Store) *CartController {
	return &CartController{Store: store}
}

// GetCart returns the caller's cart with its running total.
func (cc *CartController) GetCart(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}
	ctx.JSON(http.StatusOK, cc.Store.Get(userId))
}

// AddCartItem puts a menu item into the cart, merging quantities if the
// item is already there. The item must exist, but availability is not
// checked until checkout.
func (cc *CartController) AddCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		MenuID uint `json:"menuId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "menuId required")
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, body.MenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Menu item not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch menu item", err)
		}
		return
	}

	cc.Store.Add(userId, item, body.Qty)
	ctx.JSON(http.StatusOK, cc.Store.Get(userId))
}

// UpdateCartItem sets the quantity of a cart line; zero removes it.
func (cc *CartController) UpdateCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	menuId, err := strconv.Atoi(ctx.Param("menuId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var body struct {
		Qty int `json:"qty"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !cc.Store.SetQty(userId, uint(menuId), body.Qty) {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not in cart")
		return
	}
	ctx.JSON(http.StatusOK, cc.Store.Get(userId))
}

// RemoveCartItem drops a line from the cart.
func (cc *CartController) RemoveCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	menuId, err := strconv.Atoi(ctx.Param("menuId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	if !cc.Store.Remove(userId, uint(menuId)) {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not in cart")
		return
	}
	ctx.JSON(http.StatusOK, cc.Store.Get(userId))
}

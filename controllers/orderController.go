package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/campuscanteen/canteen-api/cart"
	"github.com/campuscanteen/canteen-api/initializers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/campuscanteen/canteen-api/realtime"
	"github.com/campuscanteen/canteen-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultBillTTLMinutes = 45
	billNumberRetries     = 5
)

type OrderController struct {
	Hub   *realtime.Hub
	Carts *cart.Store
}

func NewOrderController(hub *realtime.Hub, carts *cart.Store) *OrderController {
	return &OrderController{Hub: hub, Carts: carts}
}

type CheckoutLine struct {
	MenuID uint `json:"menuId"`
	Qty    int  `json:"qty"`
}

type checkoutBody struct {
	Items []CheckoutLine `json:"items"`
}

type orderWithBill struct {
	models.Order
	Bill *models.Bill `json:"bill"`
}

func billTTL() time.Duration {
	minutes := defaultBillTTLMinutes
	if raw := os.Getenv("BILL_TTL_MINUTES"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			minutes = parsed
		}
	}
	return time.Duration(minutes) * time.Minute
}

// uniqueBillNumber generates a bill number, regenerating on collision
// with any previously issued bill.
func uniqueBillNumber(tx *gorm.DB) (string, error) {
	return uniqueBillNumberFrom(tx, utils.GenerateBillNumber)
}

func uniqueBillNumberFrom(tx *gorm.DB, generate func() (string, error)) (string, error) {
	for range billNumberRetries {
		number, err := generate()
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&models.Bill{}).Where("bill_number = ?", number).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", errors.New("could not generate a unique bill number")
}

// Checkout turns a list of menu lines into an order and its bill. With no
// items in the body, the caller's stored cart is used and cleared on
// success. Validation completes before anything is written, and the order
// and bill are created in a single transaction.
func (oc *OrderController) Checkout(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body checkoutBody
	if err := ctx.ShouldBindJSON(&body); err != nil && ctx.Request.ContentLength > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	fromCart := false
	lines := body.Items
	if len(lines) == 0 {
		for _, line := range oc.Carts.Get(userId).Lines {
			lines = append(lines, CheckoutLine{MenuID: line.Item.ID, Qty: line.Qty})
		}
		fromCart = true
	}
	if len(lines) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "items required")
		return
	}

	// Validate every line before any write. Prices and names come from
	// the current menu rows, never from the client.
	var (
		orderItems []models.OrderItem
		billItems  []models.BillItem
		total      int
	)
	for _, line := range lines {
		qty := line.Qty
		if qty < 1 {
			qty = 1
		}

		var item models.MenuItem
		err := initializers.DB.First(&item, line.MenuID).Error
		if err != nil || !item.IsAvailable() {
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to validate items", err)
				return
			}
			sendErrorResponse(ctx, http.StatusBadRequest, fmt.Sprintf("Item %d unavailable", line.MenuID))
			return
		}

		orderItems = append(orderItems, models.OrderItem{
			MenuID: item.ID,
			Name:   item.Name,
			Price:  item.Price,
			Qty:    qty,
		})
		billItems = append(billItems, models.BillItem{
			MenuID: item.ID,
			Name:   item.Name,
			Price:  item.Price,
			Qty:    qty,
		})
		total += item.Price * qty
	}

	var user models.User
	if err := initializers.DB.First(&user, userId).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load user", err)
		return
	}

	snapshot, err := json.Marshal(billItems)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to encode bill items", err)
		return
	}

	order := models.Order{
		UserID:       userId,
		CustomerName: user.Name,
		TokenNumber:  utils.GenerateTokenNumber(),
		Total:        total,
		Status:       models.OrderPlaced,
		Items:        orderItems,
	}
	var bill models.Bill

	// One transaction for both rows: an order never exists without its
	// bill.
	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		billNumber, err := uniqueBillNumber(tx)
		if err != nil {
			return err
		}

		now := time.Now()
		bill = models.Bill{
			BillNumber:     billNumber,
			OrderID:        order.ID,
			UserID:         userId,
			CustomerName:   user.Name,
			RegisterNumber: user.RegisterNumber,
			Items:          datatypes.JSON(snapshot),
			Total:          total,
			Status:         models.BillIssued,
			ExpiresAt:      now.Add(billTTL()),
		}
		return tx.Create(&bill).Error
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Checkout failed", err)
		return
	}

	if fromCart {
		oc.Carts.Clear(userId)
	}

	oc.Hub.Publish(realtime.StaffRoom, "order:new", order)
	oc.Hub.Publish(userRoom(userId), "bill:new", bill)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"order": order, "bill": bill})
}

// GetMyOrders lists the caller's orders, newest first, with bills.
func (oc *OrderController) GetMyOrders(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var orders []models.Order
	result := initializers.DB.Preload("Items").
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, attachBills(orders))
}

// GetAllOrders lists every order, newest first, with bills.
func (oc *OrderController) GetAllOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.Preload("Items").
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, attachBills(orders))
}

func attachBills(orders []models.Order) []orderWithBill {
	enriched := make([]orderWithBill, 0, len(orders))
	for _, order := range orders {
		entry := orderWithBill{Order: order}
		var bill models.Bill
		if err := initializers.DB.Where("order_id = ?", order.ID).First(&bill).Error; err == nil {
			entry.Bill = &bill
		}
		enriched = append(enriched, entry)
	}
	return enriched
}

// UpdateOrderStatus moves an order through its lifecycle. Completed and
// cancelled orders admit no further transitions.
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid status")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	var order models.Order
	if err := initializers.DB.Preload("Items").First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch order", err)
		}
		return
	}

	if models.TerminalOrderStatus(order.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cannot modify completed or cancelled orders")
		return
	}

	if err := initializers.DB.Model(&order).Update("status", body.Status).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update order status", err)
		return
	}
	order.Status = body.Status

	oc.Hub.Publish(realtime.StaffRoom, "order:update", order)
	oc.Hub.Publish(userRoom(order.UserID), "order:update", order)

	if body.Status == models.OrderReady {
		go notifyOrderReady(order)
	}

	ctx.JSON(http.StatusOK, order)
}

// notifyOrderReady emails the customer that their order can be collected.
// Best effort only; failures are logged and never reported to the admin
// who flipped the status.
func notifyOrderReady(order models.Order) {
	if !utils.MailConfigured() {
		return
	}

	var user models.User
	if err := initializers.DB.First(&user, order.UserID).Error; err != nil {
		log.Println("Order-ready mail skipped, user lookup failed:", err)
		return
	}

	emailData := utils.EmailData{
		Name:        user.Name,
		Message:     "Your order is ready for pickup. Your token number is below.",
		TokenNumber: order.TokenNumber,
	}
	templatePath := filepath.Join("templates", "order_ready.html")
	if err := utils.SendEmail(user.Email, "Your canteen order is ready", emailData, templatePath); err != nil {
		log.Println("Error sending order-ready email:", err)
	}
}

func userRoom(userId uint) string {
	return strconv.FormatUint(uint64(userId), 10)
}

package models

import "gorm.io/gorm"

const (
	OrderPlaced    = "placed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	UserID       uint        `json:"userId"`
	CustomerName string      `json:"customerName"`
	TokenNumber  string      `json:"tokenNumber"`
	Total        int         `json:"total"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a snapshot of a menu line at checkout time. Name and
// Price are frozen copies, not live references.
type OrderItem struct {
	gorm.Model
	OrderID uint   `json:"orderId"`
	MenuID  uint   `json:"menuId"`
	Name    string `json:"name"`
	Price   int    `json:"price"`
	Qty     int    `json:"qty"`
}

// ValidOrderStatus reports whether status is a known order status.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderPlaced, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// TerminalOrderStatus reports whether status admits no further transitions.
func TerminalOrderStatus(status string) bool {
	return status == OrderCompleted || status == OrderCancelled
}

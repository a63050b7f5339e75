package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BillIssued    = "issued"
	BillCancelled = "cancelled"
)

// BillItem is one line of the items snapshot serialized into Bill.Items.
type BillItem struct {
	MenuID uint   `json:"menuId"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Qty    int    `json:"qty"`
}

type Bill struct {
	gorm.Model
	BillNumber         string         `json:"billNumber" gorm:"uniqueIndex;size:32"`
	OrderID            uint           `json:"orderId"`
	UserID             uint           `json:"userId"`
	CustomerName       string         `json:"customerName"`
	RegisterNumber     string         `json:"registerNumber"`
	Items              datatypes.JSON `json:"items"`
	Total              int            `json:"total"`
	Status             string         `json:"status"`
	ExpiresAt          time.Time      `json:"expiresAt"`
	CancelledAt        *time.Time     `json:"cancelledAt"`
	CancellationReason string         `json:"cancellationReason"`
}

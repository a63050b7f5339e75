package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/campuscanteen/canteen-api/initializers"
	"github.com/campuscanteen/canteen-api/middlewares"
	"github.com/campuscanteen/canteen-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMyBills lists the caller's bills, newest first.
func GetMyBills(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var bills []models.Bill
	result := initializers.DB.
		Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&bills)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch bills", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, bills)
}

// CancelBill records a cancellation on a bill. Bills are never deleted;
// cancellation is the only mutation they ever see.
func CancelBill(ctx *gin.Context) {
	billId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse bill id")
		return
	}

	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "reason required")
		return
	}

	var bill models.Bill
	if err := initializers.DB.First(&bill, billId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Bill not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch bill", err)
		}
		return
	}

	if bill.Status == models.BillCancelled {
		sendErrorResponse(ctx, http.StatusBadRequest, "Bill already cancelled")
		return
	}

	now := time.Now()
	updates := map[string]any{
		"status":              models.BillCancelled,
		"cancelled_at":        now,
		"cancellation_reason": body.Reason,
	}
	if err := initializers.DB.Model(&bill).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to cancel bill", err)
		return
	}

	bill.Status = models.BillCancelled
	bill.CancelledAt = &now
	bill.CancellationReason = body.Reason

	ctx.JSON(http.StatusOK, bill)
}

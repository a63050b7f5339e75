package controllers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/campuscanteen/canteen-api/initializers"
	"github.com/campuscanteen/canteen-api/models"
)

func TestGetMyBillsScopedToCaller(t *testing.T) {
	server, _, _ := setupTest(t)
	asha, ashaToken := createTestUser(t, "Asha", "asha@campus.edu", models.RoleStudent)
	ravi, _ := createTestUser(t, "Ravi", "ravi@campus.edu", models.RoleStudent)

	initializers.DB.Create(&models.Bill{BillNumber: "B-AAAA1111", UserID: asha.ID, Status: models.BillIssued})
	initializers.DB.Create(&models.Bill{BillNumber: "B-BBBB2222", UserID: ravi.ID, Status: models.BillIssued})

	recorder := doRequest(t, server, http.MethodGet, "/bills", ashaToken, nil)
	mustStatus(t, recorder, http.StatusOK)

	var bills []models.Bill
	decodeBody(t, recorder, &bills)
	if len(bills) != 1 {
		t.Fatalf("bills = %d, want 1", len(bills))
	}
	if bills[0].BillNumber != "B-AAAA1111" {
		t.Errorf("bill number = %q, want B-AAAA1111", bills[0].BillNumber)
	}
}

func TestCancelBill(t *testing.T) {
	server, _, _ := setupTest(t)
	asha, _ := createTestUser(t, "Asha", "asha@campus.edu", models.RoleStudent)
	_, adminToken := createTestUser(t, "Meera", "meera@campus.edu", models.RoleAdmin)

	bill := models.Bill{BillNumber: "B-CCCC3333", UserID: asha.ID, Status: models.BillIssued}
	initializers.DB.Create(&bill)

	path := "/bills/" + strconv.FormatUint(uint64(bill.ID), 10) + "/cancel"
	recorder := doRequest(t, server, http.MethodPost, path, adminToken, map[string]any{"reason": "duplicate order"})
	mustStatus(t, recorder, http.StatusOK)

	var reloaded models.Bill
	initializers.DB.First(&reloaded, bill.ID)
	if reloaded.Status != models.BillCancelled {
		t.Errorf("status = %q, want cancelled", reloaded.Status)
	}
	if reloaded.CancelledAt == nil {
		t.Error("cancelledAt not set")
	}
	if reloaded.CancellationReason != "duplicate order" {
		t.Errorf("reason = %q", reloaded.CancellationReason)
	}

	// Second cancellation is rejected.
	recorder = doRequest(t, server, http.MethodPost, path, adminToken, map[string]any{"reason": "again"})
	mustStatus(t, recorder, http.StatusBadRequest)
}

func TestCancelBillRequiresAdmin(t *testing.T) {
	server, _, _ := setupTest(t)
	asha, ashaToken := createTestUser(t, "Asha", "asha@campus.edu", models.RoleStudent)

	bill := models.Bill{BillNumber: "B-DDDD4444", UserID: asha.ID, Status: models.BillIssued}
	initializers.DB.Create(&bill)

	path := "/bills/" + strconv.FormatUint(uint64(bill.ID), 10) + "/cancel"
	recorder := doRequest(t, server, http.MethodPost, path, ashaToken, map[string]any{"reason": "nope"})
	mustStatus(t, recorder, http.StatusForbidden)
}

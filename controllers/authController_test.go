package controllers

import (
	"net/http"
	"testing"

	"github.com/campuscanteen/canteen-api/models"
)

func TestSignupAndLogin(t *testing.T) {
	server, _, _ := setupTest(t)

	signup := map[string]any{
		"name":           "Asha",
		"email":          "asha@campus.edu",
		"password":       "secret123",
		"registerNumber": "R-2044",
	}
	recorder := doRequest(t, server, http.MethodPost, "/auth/signup", "", signup)
	mustStatus(t, recorder, http.StatusCreated)

	login := map[string]any{"email": "asha@campus.edu", "password": "secret123"}
	recorder = doRequest(t, server, http.MethodPost, "/auth/login", "", login)
	mustStatus(t, recorder, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, recorder, &resp)
	if resp.Token == "" {
		t.Error("login returned no token")
	}
	if resp.User.Role != models.RoleStudent {
		t.Errorf("role = %q, want default student", resp.User.Role)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	server, _, _ := setupTest(t)
	createTestUser(t, "Asha", "asha@campus.edu", models.RoleStudent)

	signup := map[string]any{"name": "Imposter", "email": "asha@campus.edu", "password": "secret123"}
	recorder := doRequest(t, server, http.MethodPost, "/auth/signup", "", signup)
	mustStatus(t, recorder, http.StatusBadRequest)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	server, _, _ := setupTest(t)

	signup := map[string]any{"name": "Asha", "email": "asha@campus.edu", "password": "secret123", "role": "superuser"}
	recorder := doRequest(t, server, http.MethodPost, "/auth/signup", "", signup)
	mustStatus(t, recorder, http.StatusBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	server, _, _ := setupTest(t)
	createTestUser(t, "Asha", "asha@campus.edu", models.RoleStudent)

	login := map[string]any{"email": "asha@campus.edu", "password": "wrong-password"}
	recorder := doRequest(t, server, http.MethodPost, "/auth/login", "", login)
	mustStatus(t, recorder, http.StatusBadRequest)
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	server, _, _ := setupTest(t)

	recorder := doRequest(t, server, http.MethodGet, "/orders", "not-a-real-token", nil)
	mustStatus(t, recorder, http.StatusUnauthorized)
}

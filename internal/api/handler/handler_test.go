package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mymindapp/user-service/internal/api/handler"
)

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["success"] != true {
		t.Errorf("expected success=true, got %v", response["success"])
	}
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	h := handler.NewAuthHandler(nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{not-json"},
		{"missing password", `{"email":"alice@example.com"}`},
		{"bad email", `{"email":"not-an-email","password":"supersecret1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	h := handler.NewAuthHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestUserHandler_Register_InvalidBody(t *testing.T) {
	h := handler.NewUserHandler(nil, nil)

	// Password below the minimum length
	body := `{"name":"Alice","email":"alice@example.com","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var response struct {
		Success bool              `json:"success"`
		Error   map[string]string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Success {
		t.Error("expected success=false")
	}
	if _, ok := response.Error["Password"]; !ok {
		t.Errorf("expected a Password field error, got %v", response.Error)
	}
}

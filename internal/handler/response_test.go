package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/efreitasn/minibourse/internal/domain"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want %q", got, "application/json")
	}
	if w.Code != http.StatusOK {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusOK)
	}
	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("body status = %q, want %q", result["status"], "ok")
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusConflict, "name_in_use", "name is already taken")

	if w.Code != http.StatusConflict {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusConflict)
	}
	var result errorResponse
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Error != "name_in_use" {
		t.Errorf("error code = %q, want %q", result.Error, "name_in_use")
	}
}

func TestParseJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"acme"}`))
		r.Header.Set("Content-Type", "application/json")

		var v struct {
			Name string `json:"name"`
		}
		if err := ParseJSON(r, &v); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if v.Name != "acme" {
			t.Errorf("name = %q, want %q", v.Name, "acme")
		}
	})

	t.Run("missing content type", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"acme"}`))

		var v struct{}
		if err := ParseJSON(r, &v); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
		r.Header.Set("Content-Type", "application/json")

		var v struct{}
		if err := ParseJSON(r, &v); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation error", &domain.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{"invalid name", domain.ErrInvalidName, http.StatusBadRequest},
		{"name in use", domain.ErrNameInUse, http.StatusConflict},
		{"already listed", domain.ErrAlreadyListed, http.StatusConflict},
		{"company not found", domain.ErrCompanyNotFound, http.StatusNotFound},
		{"exchange not found", domain.ErrExchangeNotFound, http.StatusNotFound},
		{"trader not found", domain.ErrTraderNotFound, http.StatusNotFound},
		{"listing not found", domain.ErrListingNotFound, http.StatusNotFound},
		{"no holdings", domain.ErrNoHoldings, http.StatusNotFound},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"insufficient supply", domain.ErrInsufficientSupply, http.StatusUnprocessableEntity},
		{"insufficient holdings", domain.ErrInsufficientHoldings, http.StatusUnprocessableEntity},
		{"invariant violation", domain.ErrInvariantViolation, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mapDomainError(w, tt.err)
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

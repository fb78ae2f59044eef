package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	analyticsdomain "github.com/pranavkdileep/inventory-dashboard/services/analytics/domain"
	invdomain "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain"
	orddomain "github.com/pranavkdileep/inventory-dashboard/services/orders/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", invdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrOrderNotFound", orddomain.ErrOrderNotFound, http.StatusNotFound},
		{"ErrInsufficientStock", invdomain.ErrInsufficientStock, http.StatusConflict},
		{"InsufficientStockError", &invdomain.InsufficientStockError{Item: "Widget", Available: 2, Requested: 5}, http.StatusConflict},
		{"ErrItemAlreadyExists", invdomain.ErrItemAlreadyExists, http.StatusUnprocessableEntity},
		{"ErrInvalidItemName", invdomain.ErrInvalidItemName, http.StatusUnprocessableEntity},
		{"ErrInvalidQuantity", invdomain.ErrInvalidQuantity, http.StatusUnprocessableEntity},
		{"ErrInvalidPrice", invdomain.ErrInvalidPrice, http.StatusUnprocessableEntity},
		{"ErrNoLineItems", orddomain.ErrNoLineItems, http.StatusUnprocessableEntity},
		{"ErrInvalidCustomer", orddomain.ErrInvalidCustomer, http.StatusUnprocessableEntity},
		{"ErrInsufficientData", analyticsdomain.ErrInsufficientData, http.StatusUnprocessableEntity},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", invdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidQuantity", fmt.Errorf("line 2: %w", orddomain.ErrInvalidQuantity), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("bus down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, invdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected body to contain an error field, got %v", body)
	}
}

func TestWriteError_MasksInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("dial tcp 10.0.0.5: connection refused"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if got := body["error"]; got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected generic message, got %q", got)
	}
}

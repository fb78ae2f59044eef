// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	analyticsdomain "github.com/pranavkdileep/inventory-dashboard/services/analytics/domain"
	invdomain "github.com/pranavkdileep/inventory-dashboard/services/inventory/domain"
	orddomain "github.com/pranavkdileep/inventory-dashboard/services/orders/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become a 500 with a generic message so internals never
// reach clients; the real error is expected to be logged at the call site.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	httpx.JSONError(w, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrItemNotFound),
		errors.Is(err, orddomain.ErrOrderNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrInsufficientStock):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrItemAlreadyExists),
		errors.Is(err, invdomain.ErrInvalidItemName),
		errors.Is(err, invdomain.ErrInvalidCategory),
		errors.Is(err, invdomain.ErrInvalidQuantity),
		errors.Is(err, invdomain.ErrInvalidPrice),
		errors.Is(err, orddomain.ErrNoLineItems),
		errors.Is(err, orddomain.ErrInvalidCustomer),
		errors.Is(err, orddomain.ErrInvalidQuantity),
		errors.Is(err, analyticsdomain.ErrInsufficientData),
		errors.Is(err, analyticsdomain.ErrNotTrained):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}

package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/pranavkdileep/inventory-dashboard/pkg/httpx"
	"github.com/pranavkdileep/inventory-dashboard/pkg/logger"
	pkgvalidator "github.com/pranavkdileep/inventory-dashboard/pkg/validator"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=255"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Username string    `json:"username"`
}

// LoginHandler names a tenant and issues a session cookie for it.
// No password is checked: authentication hardening is out of scope, and the
// tenant's data disappears with the process anyway.
func LoginHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
		if !ok {
			return
		}

		tenantID, err := Login(w, r, store, req.Username)
		if err != nil {
			log.ErrorContext(r.Context(), "failed to save session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "failed to create session")
			return
		}

		log.InfoContext(r.Context(), "tenant logged in", "tenant_id", tenantID)
		httpx.JSON(w, http.StatusOK, LoginResponse{TenantID: tenantID, Username: req.Username})
	}
}

// LogoutHandler expires the session cookie.
func LogoutHandler(store sessions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = Logout(w, r, store)
		httpx.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
	}
}

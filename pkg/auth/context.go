package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const tenantIDKey contextKey = "tenant_id"

// ErrTenantIDNotFound is returned when no tenant ID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrTenantIDNotFound = errors.New("tenant_id not found in context")

// TenantIDFromCtx extracts the authenticated tenant ID from the request context.
// Returns uuid.Nil and ErrTenantIDNotFound if no tenant ID is set (unauthenticated request).
func TenantIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	tenantID, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	if !ok || tenantID == uuid.Nil {
		return uuid.Nil, ErrTenantIDNotFound
	}
	return tenantID, nil
}

// WithTenantID returns a new context with the given tenant ID attached.
// Used by the session middleware after validating the session cookie.
func WithTenantID(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

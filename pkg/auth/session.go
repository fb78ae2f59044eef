// Package auth provides session management and tenant resolution.
//
// There is deliberately no password verification here: a login names a
// tenant, and every tenant's data set lives only in process memory. Session
// keys should be 32 or 64 bytes for HMAC authentication, and 16, 24, or 32
// bytes for AES encryption. Production deployments must use cryptographically
// random keys generated with:
//
//	openssl rand -base64 32
package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName         = "dashboard_session"
	sessionTenantIDKey  = "tenant_id"
	sessionUsernameKey  = "username"
	sessionMaxAgeSecond = 86400 * 7 // 7 days
)

// NewSessionStore creates a cookie-based session store. Session values are
// encrypted and authenticated with securecookie; nothing is kept server-side,
// which matches the process-memory persistence boundary of the rest of the app.
//
// Parameters:
//   - authKey: 32 or 64 bytes for HMAC authentication (verifies cookie integrity)
//   - encryptionKey: 16, 24, or 32 bytes for AES encryption
//   - secureCookie: set true in production (HTTPS only); false for localhost dev
func NewSessionStore(authKey, encryptionKey []byte, secureCookie bool) sessions.Store {
	store := sessions.NewCookieStore(authKey, encryptionKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAgeSecond,
		HttpOnly: true,                 // No JavaScript access (XSS protection)
		Secure:   secureCookie,         // HTTPS only in production
		SameSite: http.SameSiteLaxMode, // CSRF protection, allows top-level navigation
	}
	return store
}

// TenantIDForUsername derives a stable tenant ID from a username.
// The same username always maps to the same tenant, so logging in again
// reattaches the session to the tenant's existing in-memory data set.
func TenantIDForUsername(username string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(strings.TrimSpace(username))))
}

// Login writes a tenant session for the given username and returns the tenant ID.
func Login(w http.ResponseWriter, r *http.Request, store sessions.Store, username string) (uuid.UUID, error) {
	tenantID := TenantIDForUsername(username)

	session, err := store.Get(r, sessionName)
	if err != nil {
		// A tampered or stale cookie yields a fresh session; not fatal.
		session, _ = store.New(r, sessionName)
	}
	session.Values[sessionTenantIDKey] = tenantID.String()
	session.Values[sessionUsernameKey] = username
	if err := session.Save(r, w); err != nil {
		return uuid.Nil, err
	}
	return tenantID, nil
}

// Logout expires the session cookie.
func Logout(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

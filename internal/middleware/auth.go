package middleware

import (
	"context"
	"net/http"
	"strings"

	"ielts-academy/backend/internal/domain/user"

	"firebase.google.com/go/v4/auth"
)

type ctxKey string

const (
	authUserKey ctxKey = "authUser"
	roleKey     ctxKey = "role"
)

type AuthUser struct {
	UID     string
	Email   string
	Name    string
	Picture string
	Claims  map[string]any
}

// TokenVerifier is satisfied by *auth.Client; the indirection keeps the
// middleware testable without a live identity provider.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

func WithAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(strings.ToLower(h), "bearer ") {
				http.Error(w, "missing Authorization: Bearer <token>", http.StatusUnauthorized)
				return
			}
			idToken := strings.TrimSpace(h[len("Bearer "):])

			tok, err := verifier.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			au := &AuthUser{
				UID:    tok.UID,
				Claims: tok.Claims,
			}
			if v, ok := tok.Claims["email"].(string); ok {
				au.Email = v
			}
			if v, ok := tok.Claims["name"].(string); ok {
				au.Name = v
			}
			if v, ok := tok.Claims["picture"].(string); ok {
				au.Picture = v
			}

			ctx := context.WithValue(r.Context(), authUserKey, au)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAuthUser(ctx context.Context) (*AuthUser, bool) {
	v := ctx.Value(authUserKey)
	if v == nil {
		return nil, false
	}
	au, ok := v.(*AuthUser)
	return au, ok
}

// AdminOnly gates the admin area. The identity's role comes from the users
// collection; identities without a role record are rejected unless their
// email is on the configured allow-list. A rejected identity gets the same
// denial message regardless of why, so the response does not leak whether an
// account exists.
func AdminOnly(users *user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			au, ok := GetAuthUser(r.Context())
			if !ok || au.UID == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ident := user.Identity{UID: au.UID, Email: au.Email, Name: au.Name, Picture: au.Picture}
			role, err := users.Authorize(r.Context(), ident)
			if err != nil {
				if user.IsErrUnauthorized(err) {
					http.Error(w, "Access denied. Only authorized admin accounts can login.", http.StatusForbidden)
					return
				}
				http.Error(w, "authorization check failed", http.StatusInternalServerError)
				return
			}
			if role != user.RoleAdmin {
				http.Error(w, "Access denied. Only authorized admin accounts can login.", http.StatusForbidden)
				return
			}

			// Session record upsert is best-effort: an authenticated admin
			// stays in even when the profile write fails.
			users.EnsureProfileBestEffort(r.Context(), ident, role)

			ctx := context.WithValue(r.Context(), roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRole(ctx context.Context) string {
	if v, ok := ctx.Value(roleKey).(string); ok {
		return v
	}
	return ""
}

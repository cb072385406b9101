package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ielts-academy/backend/internal/domain/user"
	"ielts-academy/backend/internal/store"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	tokens map[string]*auth.Token
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if tok, ok := s.tokens[idToken]; ok {
		return tok, nil
	}
	return nil, errors.New("token rejected")
}

type allowAll struct{}

func (allowAll) IsAdminEmail(string) bool { return true }

type allowNone struct{}

func (allowNone) IsAdminEmail(string) bool { return false }

func token(uid, email string) *auth.Token {
	return &auth.Token{
		UID:    uid,
		Claims: map[string]interface{}{"email": email, "name": "Test User"},
	}
}

func TestWithAuthRejectsMissingHeader(t *testing.T) {
	verifier := &stubVerifier{}
	handler := WithAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthRejectsBadToken(t *testing.T) {
	verifier := &stubVerifier{}
	handler := WithAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	req := httptest.NewRequest("GET", "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthPopulatesContext(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*auth.Token{
		"good": token("uid-1", "admin@academy.com"),
	}}

	var seen *AuthUser
	handler := WithAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetAuthUser(r.Context())
	}))

	req := httptest.NewRequest("GET", "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotNil(t, seen)
	assert.Equal(t, "uid-1", seen.UID)
	assert.Equal(t, "admin@academy.com", seen.Email)
	assert.Equal(t, "Test User", seen.Name)
}

func TestAdminOnlyAllowsAllowListedAdmin(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*auth.Token{
		"good": token("uid-1", "admin@academy.com"),
	}}
	st := store.NewClient(store.NewMemory())
	users := user.NewService(st, allowAll{})

	var role string
	handler := WithAuth(verifier)(AdminOnly(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role = GetRole(r.Context())
	})))

	req := httptest.NewRequest("GET", "/v1/admin/courses", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.RoleAdmin, role)

	// The best-effort upsert created a session record.
	p, err := users.Get(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, p.Role)
}

func TestAdminOnlyRejectsUnknownIdentity(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]*auth.Token{
		"good": token("uid-2", "stranger@x.com"),
	}}
	users := user.NewService(store.NewClient(store.NewMemory()), allowNone{})

	handler := WithAuth(verifier)(AdminOnly(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})))

	req := httptest.NewRequest("GET", "/v1/admin/courses", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnlyRejectsNonAdminRole(t *testing.T) {
	ctx := context.Background()
	verifier := &stubVerifier{tokens: map[string]*auth.Token{
		"good": token("uid-3", "student@x.com"),
	}}
	st := store.NewClient(store.NewMemory())
	require.NoError(t, st.Set(ctx, "users/uid-3", user.Profile{UID: "uid-3", Role: user.RoleStudent}))
	users := user.NewService(st, allowNone{})

	handler := WithAuth(verifier)(AdminOnly(users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})))

	req := httptest.NewRequest("GET", "/v1/admin/courses", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

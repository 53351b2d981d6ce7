package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tripbook/tripbook-go/internal/crypto"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, gotIdentity *Identity) http.Handler {
	t.Helper()
	return JWTAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Error("expected identity in context")
		}
		*gotIdentity = identity
		w.WriteHeader(http.StatusOK)
	}))
}

func TestJWTAuth_NoHeader(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/api/user-profile", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuth_NotBearer(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/api/user-profile", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/api/user-profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	token, err := crypto.GenerateToken(7, "ravi", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user-profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	token, err := crypto.GenerateToken(7, "ravi", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user-profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if identity.UserID != 7 || identity.Username != "ravi" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

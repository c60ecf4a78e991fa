package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-auth-middleware-tests"

func signToken(t *testing.T, secret string, userID uuid.UUID, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runAuthenticated(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	var gotID uuid.UUID
	var found bool

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, found = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/children", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec, gotID, found
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	userID := uuid.New()
	token := signToken(t, testSecret, userID, time.Now().Add(time.Hour))

	rec, gotID, found := runAuthenticated(m, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, found)
	assert.Equal(t, userID, gotID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	rec, _, found := runAuthenticated(m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
	assert.Contains(t, rec.Body.String(), "Authorization header required")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	rec, _, _ := runAuthenticated(m, "Token abc123")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authorization format")
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	token := signToken(t, "a-completely-different-signing-secret", uuid.New(), time.Now().Add(time.Hour))

	rec, _, found := runAuthenticated(m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	token := signToken(t, testSecret, uuid.New(), time.Now().Add(-time.Hour))

	rec, _, _ := runAuthenticated(m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestAuthenticate_NonUUIDSubject(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _, _ := runAuthenticated(m, "Bearer "+signed)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniboxhq/omnibox/pkg/config"
)

const testAuthSecret = "test-auth-secret"
const testIssuer = "http://auth.local"

func mintToken(t *testing.T, claims tokenClaims) string {
	t.Helper()
	token, err := signToken(testAuthSecret, claims)
	require.NoError(t, err)
	return token
}

func validClaims() tokenClaims {
	return tokenClaims{
		Identity:  Identity{UserID: "agent-1", OrganizationID: "org-1", Role: "agent"},
		Issuer:    testIssuer,
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
}

func TestVerifyToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token := mintToken(t, validClaims())
		id, err := verifyToken(testAuthSecret, testIssuer, token)
		require.NoError(t, err)
		assert.Equal(t, "agent-1", id.UserID)
		assert.Equal(t, "org-1", id.OrganizationID)
		assert.Equal(t, "agent", id.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := mintToken(t, validClaims())
		_, err := verifyToken("other-secret", testIssuer, token)
		assert.Error(t, err)
	})

	t.Run("tampered body", func(t *testing.T) {
		token := mintToken(t, validClaims())
		_, err := verifyToken(testAuthSecret, testIssuer, "x"+token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := validClaims()
		claims.Issuer = "http://evil.local"
		_, err := verifyToken(testAuthSecret, testIssuer, mintToken(t, claims))
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
		_, err := verifyToken(testAuthSecret, testIssuer, mintToken(t, claims))
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := validClaims()
		claims.UserID = ""
		_, err := verifyToken(testAuthSecret, testIssuer, mintToken(t, claims))
		assert.Error(t, err)
	})

	t.Run("not a token", func(t *testing.T) {
		_, err := verifyToken(testAuthSecret, testIssuer, "garbage")
		assert.Error(t, err)
	})
}

func TestExtractToken(t *testing.T) {
	e := echo.New()

	t.Run("authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc123")
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "abc123", extractToken(c))
	})

	t.Run("query fallback for websocket upgrade", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?token=qrs456", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "qrs456", extractToken(c))
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Empty(t, extractToken(c))
	})
}

func TestRequireAuth(t *testing.T) {
	s := &Server{config: &config.Config{AuthSecret: testAuthSecret, AuthURL: testIssuer}}
	e := echo.New()
	e.GET("/protected", func(c *echo.Context) error {
		return c.String(http.StatusOK, currentIdentity(c).UserID)
	}, s.requireAuth())

	t.Run("valid token passes identity through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, validClaims()))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "agent-1", rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"
)

// identityKey is the echo context key the auth middleware stores the
// resolved Identity under.
const identityKey = "identity"

// Identity is the authenticated principal resolved from an API token.
type Identity struct {
	UserID         string `json:"sub"`
	OrganizationID string `json:"org"`
	Role           string `json:"role"`
}

// tokenClaims is the signed token body. Tokens are minted by the external
// auth service with the shared AUTH_SECRET; this server only verifies.
type tokenClaims struct {
	Identity
	Issuer    string `json:"iss"`
	ExpiresAt int64  `json:"exp"`
}

// signToken mints a token for the given claims. Exposed for tests and
// local tooling; production tokens come from the auth service.
func signToken(secret string, claims tokenClaims) (string, error) {
	body, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal token claims: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(body)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encoded))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return encoded + "." + sig, nil
}

// verifyToken checks the signature, issuer, and expiry of a token and
// returns the embedded identity.
func verifyToken(secret, issuer, token string) (*Identity, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return nil, fmt.Errorf("malformed token")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encoded))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return nil, fmt.Errorf("invalid token signature")
	}

	body, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("malformed token body")
	}
	var claims tokenClaims
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, fmt.Errorf("malformed token claims")
	}

	if issuer != "" && claims.Issuer != issuer {
		return nil, fmt.Errorf("unexpected token issuer")
	}
	if claims.ExpiresAt > 0 && time.Now().Unix() > claims.ExpiresAt {
		return nil, fmt.Errorf("token expired")
	}
	if claims.UserID == "" || claims.OrganizationID == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	return &claims.Identity, nil
}

// extractToken pulls the bearer token from the Authorization header, or
// from the token query parameter. The query fallback exists for the
// WebSocket upgrade, where browsers cannot set custom headers.
func extractToken(c *echo.Context) string {
	if auth := c.Request().Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return token
		}
	}
	return c.QueryParam("token")
}

// requireAuth returns middleware that rejects unauthenticated requests
// and stores the resolved identity on the context.
func (s *Server) requireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			id, err := verifyToken(s.config.AuthSecret, s.config.AuthURL, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// currentIdentity returns the identity stored by requireAuth.
func currentIdentity(c *echo.Context) *Identity {
	if id, ok := c.Get(identityKey).(*Identity); ok {
		return id
	}
	return &Identity{}
}

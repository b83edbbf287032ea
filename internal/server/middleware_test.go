package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBlogRequest builds a valid blog creation request carrying the given
// raw Authorization header.
func buildBlogRequest(t *testing.T, authHeader string) *http.Request {
	t.Helper()
	body := []byte(`{"title":"t","url":"https://example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func defaultClaims(userID string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":      userID,
		"username": "mluukkai",
		"iss":      "bloglist-api",
		"aud":      "bloglist-client",
		"exp":      now.Add(time.Hour).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}
}

func TestAuthRequired_SchemeCaseInsensitive(t *testing.T) {
	app := setupAPIServer(t)
	token := registerAndLogin(t, app, "mluukkai")

	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		req := buildBlogRequest(t, scheme+" "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode, "scheme %q", scheme)
		_ = resp.Body.Close()
	}
}

func TestAuthRequired_RejectsBadCredentials(t *testing.T) {
	app := setupAPIServer(t)
	token := registerAndLogin(t, app, "mluukkai")

	expired := defaultClaims("1")
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongIssuer := defaultClaims("1")
	wrongIssuer["iss"] = "someone-else"

	wrongAudience := defaultClaims("1")
	wrongAudience["aud"] = "someone-else"

	cases := []struct {
		name   string
		header string
	}{
		{"Wrong Scheme", "Token " + token},
		{"No Token", "Bearer"},
		{"Garbage", "Bearer not.a.token"},
		{"Wrong Secret", "Bearer " + signTestToken(t, "other_secret", defaultClaims("1"))},
		{"Expired", "Bearer " + signTestToken(t, "test_secret", expired)},
		{"Wrong Issuer", "Bearer " + signTestToken(t, "test_secret", wrongIssuer)},
		{"Wrong Audience", "Bearer " + signTestToken(t, "test_secret", wrongAudience)},
		{"Unknown User", "Bearer " + signTestToken(t, "test_secret", defaultClaims("9999"))},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := buildBlogRequest(t, tt.header)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "token missing or invalid", decodeError(t, resp).Error)
		})
	}
}

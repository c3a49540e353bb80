package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	uid string
	err error
}

func (f fakeVerifier) Verify(_ context.Context, _ string) (string, error) {
	return f.uid, f.err
}

func newTestRouter(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", AuthMiddleware(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newTestRouter(fakeVerifier{uid: "u1"})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "error")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newTestRouter(fakeVerifier{uid: "u1"})

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code, "header %q", header)
	}
}

func TestAuthMiddlewareVerificationFailure(t *testing.T) {
	r := newTestRouter(fakeVerifier{err: errors.New("token expired")})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	// Cause is not distinguishable from the response body.
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareSuccessSetsUserID(t *testing.T) {
	r := newTestRouter(fakeVerifier{uid: "user-42"})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "user-42")
}

func signToken(t *testing.T, secret []byte, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestJWTVerifierValidToken(t *testing.T) {
	secret := []byte("test-secret")
	v := NewJWTVerifier(secret)

	tokenString := signToken(t, secret, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	uid, err := v.Verify(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
}

func TestJWTVerifierRejects(t *testing.T) {
	secret := []byte("test-secret")
	v := NewJWTVerifier(secret)

	expired := signToken(t, secret, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := signToken(t, []byte("other-secret"), jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noSubject := signToken(t, secret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	cases := map[string]string{
		"expired":    expired,
		"wrong key":  wrongKey,
		"no subject": noSubject,
		"garbage":    "not.a.token",
	}
	for name, tokenString := range cases {
		_, err := v.Verify(context.Background(), tokenString)
		assert.Error(t, err, name)
	}
}

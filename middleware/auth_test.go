package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/admin", AdminRequired(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
	})
	return r
}

func TestAdminRequired(t *testing.T) {
	valid, err := NewAdminToken(testSecret, time.Hour, time.Now())
	require.NoError(t, err)

	expired, err := NewAdminToken(testSecret, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	otherSecret, err := NewAdminToken("another-secret", time.Hour, time.Now())
	require.NoError(t, err)

	wrongSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "visitor",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: AdminSubject,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: `"subject":"admin"`},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "authorization header required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "invalid authorization format"},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantBody: "token expired"},
		{name: "other secret", header: "Bearer " + otherSecret, wantStatus: http.StatusUnauthorized, wantBody: "invalid token"},
		{name: "wrong subject", header: "Bearer " + wrongSubject, wantStatus: http.StatusUnauthorized, wantBody: "invalid token"},
		{name: "no expiry", header: "Bearer " + noExpiry, wantStatus: http.StatusUnauthorized, wantBody: "invalid token"},
		{name: "garbage", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantBody: "invalid token"},
	}

	router := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestNewAdminToken_Errors(t *testing.T) {
	_, err := NewAdminToken("", time.Hour, time.Now())
	assert.Error(t, err)

	_, err = NewAdminToken(testSecret, 0, time.Now())
	assert.Error(t, err)
}

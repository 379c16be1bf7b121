package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clinicdev/clinic-api/config"
	"github.com/clinicdev/clinic-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// The revocation store is only consulted after signature and type checks
// pass, so these rejection paths run without Redis.
func TestAuthMiddlewareRejections(t *testing.T) {
	mw := NewAuthMiddleware(quietLogger(), testJWTService(), nil)

	refreshToken, _, err := testJWTService().GenerateRefreshToken(1, "x@y.test", "USER")
	require.NoError(t, err)

	foreignToken, _, err := jwt.NewJWTService(config.JWTConfig{
		Secret:       "other-secret",
		AccessExpiry: time.Minute,
	}).GenerateAccessToken(1, "x@y.test", "USER")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed token", "Bearer not.a.token"},
		{"wrong signature", "Bearer " + foreignToken},
		{"refresh token as access", "Bearer " + refreshToken},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/resource", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := httptest.NewRecorder()
			mw.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

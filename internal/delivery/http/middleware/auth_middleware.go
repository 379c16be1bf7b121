package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/clinicdev/clinic-api/internal/infrastructure/cache"
	"github.com/clinicdev/clinic-api/pkg/jwt"
	"github.com/clinicdev/clinic-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated identity attached to the request context.
type Principal struct {
	UserID  uint
	Email   string
	Role    string
	TokenID string
}

// GetPrincipal retrieves the authenticated identity, false when the request
// did not pass through the auth middleware.
func GetPrincipal(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*Principal)
	return principal, ok
}

// WithPrincipal returns a context carrying the identity.
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	tokenStore *cache.TokenStore
}

func NewAuthMiddleware(log *logrus.Logger, jwtService *jwt.JWTService, tokenStore *cache.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Handle validates the bearer token, rejects refresh tokens used as access
// tokens, checks the token has not been revoked, and stores the principal in
// the request context.
func (m *AuthMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}
		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		valid, err := m.tokenStore.IsAccessTokenValid(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to check token revocation: %+v", err)
			response.InternalServerError(w, "")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		principal := &Principal{
			UserID:  claims.UserID,
			Email:   claims.Email,
			Role:    claims.Role,
			TokenID: claims.TokenID,
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

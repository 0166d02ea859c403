package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/haritapaliwal/campus-ease/internal/api/handlers"
	"github.com/haritapaliwal/campus-ease/internal/domain"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the authenticated caller extracted from the bearer token.
type Identity struct {
	UserID int64
	Role   string
	ShopID *int64
}

type tokenClaims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	ShopID *int64 `json:"shopId,omitempty"`
	jwt.RegisteredClaims
}

// Logger is the logging interface the middleware needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth validates bearer tokens and stores the caller identity in the
// request context. Token issuance lives outside this service.
type Auth struct {
	secret []byte
	logger Logger
}

// NewAuth creates the auth middleware.
func NewAuth(secret string, logger Logger) *Auth {
	return &Auth{secret: []byte(secret), logger: logger}
}

// Authenticate rejects requests without a valid bearer token.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			handlers.RespondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &tokenClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			a.logger.Warn("auth: token rejected: %v", err)
			handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.UserID <= 0 {
			a.logger.Warn("auth: token has no user id")
			handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		identity := Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
			ShopID: claims.ShopID,
		}
		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireOwner rejects authenticated callers that are not shop owners. It
// must run after Authenticate.
func (a *Auth) RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := FromContext(r.Context())
		if !ok || identity.Role != domain.RoleOwner {
			handlers.RespondForbidden(w, "owner access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// FromContext extracts the caller identity stored by Authenticate.
func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

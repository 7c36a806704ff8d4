package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/infrastructure/http/response"
)

type identityKey struct{}

// AuthMiddleware enforces bearer-token authentication and role checks.
type AuthMiddleware struct {
	tokens outbound.TokenService
}

func NewAuthMiddleware(tokens outbound.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth rejects requests without a bearer token (401) or with a token
// that fails verification (403). On success the verified identity is attached
// to the request context and trusted for the rest of the request.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			response.Unauthorized(w, "No token provided")
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			response.Forbidden(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireRole composes RequireAuth and then checks the attached identity's
// role, so a role-gated route can never run without an identity.
func (m *AuthMiddleware) RequireRole(role entity.Role, next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := IdentityFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "No token provided")
			return
		}
		if claims.Role != role {
			response.Forbidden(w, "Forbidden: insufficient permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext returns the identity attached by RequireAuth.
func IdentityFromContext(ctx context.Context) (*outbound.TokenClaims, bool) {
	claims, ok := ctx.Value(identityKey{}).(*outbound.TokenClaims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

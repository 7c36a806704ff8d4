package outbound

import (
	"errors"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenClaims is the identity embedded in a token and, once verified,
// attached to a request.
type TokenClaims struct {
	UserID   int64
	Username string
	Role     entity.Role
}

// TokenService issues and verifies self-contained bearer tokens. Verification
// is a purely local cryptographic check, no storage access.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}

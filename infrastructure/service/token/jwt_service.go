package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/TonkaCepo7/INF2-ALP-BOOK/application/port/outbound"
	"github.com/TonkaCepo7/INF2-ALP-BOOK/domain/entity"
)

// JWTService issues and verifies HS256-signed bearer tokens. Tokens are
// self-contained; there is no revocation list, a token stays valid until its
// expiry.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService builds the token service. The secret is mandatory: refusing
// to start without one beats signing with a well-known default.
func NewJWTService(secret string, ttl time.Duration) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

type jwtClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTService) Issue(claims outbound.TokenClaims) (string, error) {
	now := time.Now()
	tokenClaims := jwtClaims{
		Username: claims.Username,
		Role:     claims.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(claims.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates the token signature and expiry. Everything
// except expiry collapses into ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*outbound.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, outbound.ErrTokenExpired
		}
		return nil, outbound.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, outbound.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, outbound.ErrInvalidToken
	}

	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, outbound.ErrInvalidToken
	}

	return &outbound.TokenClaims{
		UserID:   userID,
		Username: claims.Username,
		Role:     role,
	}, nil
}

package crypto

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an access token.
const TokenTTL = time.Hour

type jwtClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTSigner signs and verifies HS256 access tokens. The clock is
// injectable so expiry behavior is testable.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ TokenSigner = (*JWTSigner)(nil)
var _ TokenVerifier = (*JWTSigner)(nil)

// NewJWTSigner builds a signer around the process-wide signing secret.
func NewJWTSigner(secret []byte) *JWTSigner {
	return &JWTSigner{secret: secret, ttl: TokenTTL, now: time.Now}
}

// WithClock replaces the signer's clock. Tests only.
func (s *JWTSigner) WithClock(now func() time.Time) *JWTSigner {
	s.now = now
	return s
}

func (s *JWTSigner) Sign(ctx context.Context, claims Claims) (string, time.Duration, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwtClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign access token: %w", err)
	}
	return signed, s.ttl, nil
}

func (s *JWTSigner) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return &Claims{UserID: claims.UserID, Email: claims.Email}, nil
}

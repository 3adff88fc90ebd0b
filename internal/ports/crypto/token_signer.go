package crypto

import (
	"context"
	"time"
)

// Claims is the identity data baked into an access token.
type Claims struct {
	UserID string
	Email  string
}

// TokenSigner mints signed, time-limited access tokens.
type TokenSigner interface {
	Sign(ctx context.Context, claims Claims) (token string, expiresIn time.Duration, err error)
}

// TokenVerifier checks a token's signature and expiry and yields its
// claims. The HTTP middleware is the only consumer.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

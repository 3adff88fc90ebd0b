// Package middleware provides the HTTP middleware in front of the
// GraphQL endpoint.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/messagenode/messagenode/internal/ports/crypto"
)

// Identity is the request-scoped caller identity. It is constructed
// once per request from the Authorization header and read-only after
// that. A missing or unverifiable token yields the unauthenticated
// identity, never an HTTP error: the resolvers own the 401 semantics.
type Identity struct {
	Authenticated bool
	UserID        string
	Email         string
}

type ctxKey struct{}

// WithIdentity attaches an identity to the context. Exported for the
// resolver tests.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the caller identity, unauthenticated when none
// was attached.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKey{}).(Identity)
	return id
}

// Auth verifies Bearer tokens and attaches the resulting identity.
type Auth struct {
	verifier crypto.TokenVerifier
	log      *logrus.Logger
}

func NewAuth(verifier crypto.TokenVerifier, log *logrus.Logger) *Auth {
	return &Auth{verifier: verifier, log: log}
}

// Handler wraps next with identity extraction.
func (a *Auth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), a.identify(r))))
	})
}

func (a *Auth) identify(r *http.Request) Identity {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Identity{}
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{}
	}

	claims, err := a.verifier.Verify(r.Context(), parts[1])
	if err != nil {
		a.log.WithError(err).Debug("token verification failed")
		return Identity{}
	}

	return Identity{Authenticated: true, UserID: claims.UserID, Email: claims.Email}
}

package crypto

import "context"

// PasswordHasher is the contract for account secret hashing. The
// resolvers do not care which algorithm backs it.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, encodedHash string) (bool, error)
}

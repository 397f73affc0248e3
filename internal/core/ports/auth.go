package ports

import "context"

// TokenClaims is what an access token says about its bearer.
type TokenClaims struct {
	UserID   int64
	Username string
	TokenID  string
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	Issue(userID int64, username string) (string, error)

	// Parse verifies the token and returns its claims. Any failure wraps
	// errs.ErrUnauthenticated.
	Parse(token string) (TokenClaims, error)
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// RateLimiter counts requests per key within the configured window.
type RateLimiter interface {
	// Allow records a request for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}

package auth

import (
	"github.com/matthewhartstonge/argon2"
)

// Argon2Hasher stores passwords as encoded argon2id hashes.
type Argon2Hasher struct {
	config argon2.Config
}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{config: argon2.DefaultConfig()}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	encoded, err := h.config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Verify reports whether password matches the encoded hash. A malformed hash is
// an error, a mismatch is not.
func (h *Argon2Hasher) Verify(password, encoded string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encoded))
}

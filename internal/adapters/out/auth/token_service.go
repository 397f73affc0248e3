// Package auth implements the token and password ports.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrSecretIsTooShort = errors.New("jwt secret must be at least 32 bytes")

const minSecretLength = 32

type claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokenService signs HS256 access tokens.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if len(secret) < minSecretLength {
		return nil, ErrSecretIsTooShort
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("token ttl", ttl, "1s", "none")
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token carrying user_id, username, jti, iat and exp.
func (s *JWTTokenService) Issue(userID int64, username string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

func (s *JWTTokenService) Parse(token string) (ports.TokenClaims, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, err)
	}
	if !parsed.Valid || c.UserID <= 0 {
		return ports.TokenClaims{}, fmt.Errorf("%w: invalid token", errs.ErrUnauthenticated)
	}
	return ports.TokenClaims{UserID: c.UserID, Username: c.Username, TokenID: c.ID}, nil
}

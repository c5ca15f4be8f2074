// Package auth implements access-token signing and verification for the
// questionboard server. Access tokens are HS256 JWTs carrying only the user
// id; they are never persisted, so a token is valid exactly when its
// signature checks out and it has not expired.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/questionboard/questionboard/internal/common"
)

// Distinct verification outcomes. They are diagnostic only: TokenService
// collapses all of them to common.ErrInvalidToken so that no caller can
// tell an expired token from a forged one.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrBadSignature   = errors.New("bad token signature")
)

// GenerateToken signs an HS256 JWT whose subject is the decimal user id,
// issued now and expiring after ttl.
func GenerateToken(userID int64, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString(secret)
}

// ParseSubject verifies the token and returns the embedded user id.
// Only HS256 is accepted; tokens signed with any other method fail
// verification.
func ParseSubject(tokenString string, secret []byte) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrBadSignature
		default:
			return 0, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return 0, ErrBadSignature
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}
	return userID, nil
}

// TokenService issues and validates access tokens with a fixed secret and
// TTL. It holds no persisted state.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService constructs a TokenService. The TTL comes from
// configuration and must be positive.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue creates an access token for userID using the configured TTL.
func (s *TokenService) Issue(userID int64) (string, error) {
	return GenerateToken(userID, s.secret, s.ttl)
}

// Validate returns the user id embedded in a valid token. Every failure
// mode maps to common.ErrInvalidToken; callers must not learn why a token
// was rejected.
func (s *TokenService) Validate(tokenString string) (int64, error) {
	userID, err := ParseSubject(tokenString, s.secret)
	if err != nil {
		return 0, common.ErrInvalidToken
	}
	return userID, nil
}

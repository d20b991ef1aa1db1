// Package auth issues and verifies the bearer tokens that identify API
// callers. Everything past the middleware only ever sees the verified
// user ID, never the token.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("the authentication token is missing or invalid")

// UserIDKey is the gin context key the middleware stores the verified
// user ID under.
const UserIDKey = "userID"

// tokenLifetime matches the 7 day expiry the web client expects.
const tokenLifetime = 7 * 24 * time.Hour

// TokenAuthority signs and verifies HS256 tokens with a shared secret.
type TokenAuthority struct {
	secret []byte
}

func New(secret string) *TokenAuthority {
	return &TokenAuthority{secret: []byte(secret)}
}

// Sign returns a signed token for the user.
func (a *TokenAuthority) Sign(userID uint) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		ID:        uuid.NewString(),
	})

	return token.SignedString(a.secret)
}

// Verify parses the token and returns the user ID it was signed for.
// All parse, signature and expiry failures surface as ErrInvalidToken.
func (a *TokenAuthority) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}

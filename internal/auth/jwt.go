// File: internal/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token is malformed, expired, or
// signed with the wrong key.
var ErrInvalidToken = errors.New("invalid or expired token")

// Tokens are valid for 7 days from issuance.
const tokenTTL = 7 * 24 * time.Hour

// Claims carries the verified identity extracted from a token.
type Claims struct {
	UserID int64
	Role   string
}

// Authenticator issues and verifies HMAC-signed tokens. The signing key
// is process-wide configuration, loaded once at startup.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// New creates an Authenticator signing with the given secret.
func New(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		ttl:    tokenTTL,
	}
}

// tokenClaims is the full wire-level claims structure.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// IssueToken signs a new token embedding the subject's id and role.
func (a *Authenticator) IssueToken(userID int64, role string) (string, error) {
	now := time.Now().UTC()

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
		UserID: userID,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the signature and expiry of a token and returns the
// embedded claims. Any failure is reported as ErrInvalidToken.
func (a *Authenticator) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: claims.UserID, Role: claims.Role}, nil
}

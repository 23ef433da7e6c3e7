package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims carried by tokens this server issues. The
// subject is the account id in decimal form.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer signs and verifies the HS256 tokens handed out at login.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. In development the secret may be empty,
// in which case a fixed fallback is used so local tokens survive restarts.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if secret == "" {
		secret = "dev-insecure-secret"
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given account id.
func (i *Issuer) Issue(accountID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns the account id it was
// issued for.
func (i *Issuer) Parse(tokenStr string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject %q is not an account id", claims.Subject)
	}
	return id, nil
}

// TTL reports how long issued tokens remain valid.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

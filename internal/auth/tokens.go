// Package auth issues and validates the HS256 token pair and wraps the
// bcrypt password helpers.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"donatehub/internal/domain"
)

// ErrInvalidToken is returned for any token that fails parsing, signature
// verification or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims holds the typed JWT payload.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies the access/refresh token pair.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokens builds a token signer with the given secret and lifetimes.
func NewTokens(secret string, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Access creates a signed short-lived access token for the principal.
func (t *Tokens) Access(p domain.Principal) (string, error) {
	return t.sign(p, t.accessTTL)
}

// Refresh creates a signed long-lived refresh token for the principal.
func (t *Tokens) Refresh(p domain.Principal) (string, error) {
	return t.sign(p, t.refreshTTL)
}

func (t *Tokens) sign(p domain.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "donatehub",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a token string and returns the principal it carries.
func (t *Tokens) Verify(token string) (domain.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Principal{}, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Principal{}, ErrInvalidToken
	}
	p := domain.Principal{ID: claims.Subject, Role: domain.Role(claims.Role)}
	if p.ID == "" || !p.Role.Valid() {
		return domain.Principal{}, ErrInvalidToken
	}
	return p, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

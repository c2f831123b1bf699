package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenParams describes an access token to mint. Subject becomes the acting user recorded in audit fields.
type TokenParams struct {
	Subject string
	Issuer  string
	TTL     time.Duration
}

// ErrEmptySubject is returned for tokens that carry no subject.
var ErrEmptySubject = errors.New("token subject is empty")

// GenerateJWT signs an HS256 token for params, valid from now until now+TTL.
func GenerateJWT(params TokenParams, secret string, now time.Time) (string, error) {
	if params.Subject == "" {
		return "", ErrEmptySubject
	}
	if params.TTL <= 0 {
		return "", errors.New("token ttl must be positive")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   params.Subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(params.TTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// It returns the RegisteredClaims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, secretKey string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, ErrEmptySubject
	}

	return claims, nil
}

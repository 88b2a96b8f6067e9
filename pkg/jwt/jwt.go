package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims identifies the NGO a token was issued to.
type Claims struct {
	NGOID string `json:"ngo_id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token for an NGO.
func GenerateToken(ngoID, email, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		NGOID: ngoID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ngoID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a token and checks signature, algorithm and expiry.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.NGOID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

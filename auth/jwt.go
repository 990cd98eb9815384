package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in tokens and checked by the role middleware.
const (
	RoleManager = "manager"
	RoleDriver  = "driver"
	RoleClient  = "client"
)

// Claims carries standard and custom claims for our tokens. Subject holds
// the principal's business identifier (manager ssn, client email, driver name).
type Claims struct {
	Role        string `json:"role"`
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// SignJWT creates a signed token for the principal.
func SignJWT(secret string, p *Principal, ttl time.Duration) (string, error) {
	claims := Claims{
		Role:        p.Role,
		DisplayName: p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			Issuer:    "taxi-rental-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidate parses a token and validates signature and expiry.
func ParseAndValidate(secret string, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/themebuilder/internal/config"
)

// Token scopes.
const (
	ScopeWrite = "themes:write"
	ScopeAdmin = "admin"
)

// Issuer is stamped on every token this service signs.
const Issuer = "themebuilder"

// ErrInsecureSecret means no signing secret has been configured.
var ErrInsecureSecret = errors.New("jwt secret is unset or still the default; set THEMEBUILDER_JWT_SECRET")

// Claims represents JWT claims for API access
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Allows reports whether the token grants scope. Admin grants everything.
func (c *Claims) Allows(scope string) bool {
	return c.Scope == scope || c.Scope == ScopeAdmin
}

// getJWTSecret returns the JWT secret from env var or config
func getJWTSecret() string {
	// Environment variable takes precedence
	if secret := os.Getenv("THEMEBUILDER_JWT_SECRET"); secret != "" {
		return secret
	}
	return config.GetString("auth.jwt_secret")
}

// CheckSecret reports ErrInsecureSecret when the signing secret is empty or
// the placeholder shipped in new config files.
func CheckSecret() error {
	switch getJWTSecret() {
	case "", config.DefaultJWTSecret:
		return ErrInsecureSecret
	}
	return nil
}

// GenerateToken creates a signed token for subject with the given scope
func GenerateToken(subject, scope string) (string, error) {
	if subject == "" {
		return "", errors.New("subject cannot be empty")
	}
	if !slices.Contains([]string{ScopeWrite, ScopeAdmin}, scope) {
		return "", fmt.Errorf("unknown scope %q", scope)
	}
	if err := CheckSecret(); err != nil {
		return "", err
	}

	expiryHours := config.GetInt("auth.jwt_expiry_hours")
	if expiryHours == 0 {
		expiryHours = 720 // Default fallback
	}

	now := time.Now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getJWTSecret()))
}

// ValidateToken parses and validates a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}
	if err := CheckSecret(); err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getJWTSecret()), nil
	}, jwt.WithIssuer(Issuer))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

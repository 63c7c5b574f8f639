// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thatcatcamp/themebuilder/internal/config"
)

func TestMain(m *testing.M) {
	os.Setenv("THEMEBUILDER_JWT_SECRET", "auth-test-secret")
	os.Exit(m.Run())
}

func TestInsecureSecretRefused(t *testing.T) {
	for _, secret := range []string{"", config.DefaultJWTSecret} {
		t.Setenv("THEMEBUILDER_JWT_SECRET", secret)

		if err := CheckSecret(); !errors.Is(err, ErrInsecureSecret) {
			t.Errorf("Expected ErrInsecureSecret for %q, got %v", secret, err)
		}
		if _, err := GenerateToken("ci-bot", ScopeWrite); !errors.Is(err, ErrInsecureSecret) {
			t.Errorf("Expected GenerateToken to refuse secret %q, got %v", secret, err)
		}
	}
}

func TestDefaultSecretTokenRejected(t *testing.T) {
	// A token signed with the public placeholder must not validate.
	claims := Claims{
		Scope: ScopeWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   "intruder",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.DefaultJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	t.Setenv("THEMEBUILDER_JWT_SECRET", config.DefaultJWTSecret)
	if _, err := ValidateToken(forged); !errors.Is(err, ErrInsecureSecret) {
		t.Errorf("Expected ErrInsecureSecret, got %v", err)
	}
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("ci-bot", ScopeWrite)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}

	// Token should have 3 parts separated by dots
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("Expected 3 token parts, got %d", len(parts))
	}
}

func TestGenerateTokenRejectsBadInput(t *testing.T) {
	if _, err := GenerateToken("", ScopeWrite); err == nil {
		t.Error("Expected error for empty subject")
	}
	if _, err := GenerateToken("ci-bot", "root"); err == nil {
		t.Error("Expected error for unknown scope")
	}
}

func TestValidateTokenValid(t *testing.T) {
	token, err := GenerateToken("ci-bot", ScopeWrite)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.Subject != "ci-bot" {
		t.Errorf("Expected subject ci-bot, got %s", claims.Subject)
	}

	if claims.Scope != ScopeWrite {
		t.Errorf("Expected scope %s, got %s", ScopeWrite, claims.Scope)
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	if _, err := ValidateToken(""); err == nil {
		t.Error("Expected error for empty token")
	}

	if _, err := ValidateToken("invalid.token.here"); err == nil {
		t.Error("Expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("THEMEBUILDER_JWT_SECRET", "first-secret")
	token, err := GenerateToken("ci-bot", ScopeWrite)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	t.Setenv("THEMEBUILDER_JWT_SECRET", "second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("Expected error when secret changes")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	t.Setenv("THEMEBUILDER_JWT_SECRET", "test-secret")

	past := time.Now().Add(-2 * time.Hour)
	claims := Claims{
		Scope: ScopeWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   "ci-bot",
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestClaimsAllows(t *testing.T) {
	write := &Claims{Scope: ScopeWrite}
	admin := &Claims{Scope: ScopeAdmin}

	if !write.Allows(ScopeWrite) {
		t.Error("write scope should allow writes")
	}
	if write.Allows(ScopeAdmin) {
		t.Error("write scope should not allow admin")
	}
	if !admin.Allows(ScopeWrite) {
		t.Error("admin scope should allow writes")
	}
}

package security

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "bizdesk"

// Identity is the signed-in user a request acts for.
type Identity struct {
	ID         string `json:"nameid"`
	UniqueName string `json:"unique_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Provider   string `json:"provider,omitempty"`
}

// IdentityClaims includes Identity and standard JWT claims
type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

func DecodeSecret(base64Secret string) ([]byte, error) {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("signing secret is not valid base64: %w", err)
	}
	if len(secret) == 0 {
		return nil, errors.New("signing secret is empty")
	}
	return secret, nil
}

func CreateIdentityToken(identity *Identity, secret []byte, expiresIn time.Duration) (string, error) {
	if identity == nil || identity.ID == "" {
		return "", errors.New("identity has no id")
	}
	now := time.Now()
	claims := IdentityClaims{
		Identity: *identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

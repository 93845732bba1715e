package security

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

func ParseIdentityToken(tokenStr string, secret []byte) (*Identity, error) {
	claims := &IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	}, jwt.WithIssuer(Issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	identity := claims.Identity
	if identity.ID == "" {
		identity.ID = claims.Subject
	}
	if identity.ID == "" {
		return nil, ErrInvalidToken
	}
	return &identity, nil
}

package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forkline/chat-service/internal/model"
)

// Validator checks access tokens minted by the platform's identity service.
// This service never issues tokens itself; it only verifies them at the
// auth middleware boundary.
type Validator struct {
	secret []byte
}

func New(secret string) *Validator {
	return &Validator{
		secret: []byte(secret),
	}
}

func (v *Validator) ValidateAccessToken(tokenString string) (*model.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse access JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.AccessClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid access JWT token")
}

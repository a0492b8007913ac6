package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims mirror the access tokens of the hosted identity provider. Subject is the user id.
type JWTClaims struct {
	jwt.RegisteredClaims
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

type Pinger interface {
	Ping(ctx context.Context) error
}

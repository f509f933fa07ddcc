package service

import (
	"planner/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   string      `json:"userId"`
	UserName string      `json:"userName"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed token for an authenticated identity.
	IssueToken(userID, userName string, role entity.Role) (string, error)

	// VerifyToken checks the validity of a token string.
	VerifyToken(tokenString string) (*Claims, error)
}

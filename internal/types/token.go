package types

import "github.com/google/uuid"

// TokenClaims are the claims carried by an authenticated request.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// Package auth provides credential handling: password hashing and
// verification, and issuing and validating the signed bearer tokens that
// authorize mutating requests.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims holds the verified identity carried by an access token.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService issues and validates signed access tokens. Tokens are
// stateless: nothing is stored server-side, so a leaked token stays valid
// until its natural expiry. Revocation is deliberately unsupported.
type JWTService interface {
	// GenerateToken creates a signed access token carrying the user's
	// identity and email, expiring after the configured lifetime.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies a token's signature and time claims.
	// Returns ErrExpiredToken for expired tokens and ErrInvalidToken for
	// anything malformed, forged, or otherwise unusable.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

package auth

import "callprep/internal/domain/models"

// TokenVerifier validates bearer tokens presented by the form frontend.
type TokenVerifier interface {
	// VerifyToken validates a JWT and returns its claims, or an error if
	// the token is invalid, expired, or malformed.
	VerifyToken(tokenString string) (*models.AccessClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}

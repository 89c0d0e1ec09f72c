package security

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"trackvault/internal/apperrors"
)

// TokenManager issues and verifies HS256-signed bearer tokens. Tokens are
// self-contained: the server keeps no record of issued tokens, so there is
// no revocation within the expiry window.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager signing with secret. Tokens
// expire ttl after issuance.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token bound to subjectID.
func (m *TokenManager) Issue(subjectID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": subjectID,
		"iat":     now.Unix(),
		"exp":     now.Add(m.ttl).Unix(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates tokenString and returns the subject user id.
// Failures map to apperrors.ErrInvalidToken (malformed),
// apperrors.ErrExpiredToken (past expiry) or apperrors.ErrBadSignature
// (tampered or signed with another key).
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", classifyTokenError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", apperrors.ErrInvalidToken
	}

	subject, ok := claims["user_id"].(string)
	if !ok || subject == "" {
		return "", apperrors.ErrInvalidToken
	}
	return subject, nil
}

// classifyTokenError maps jwt-go's validation bitmask onto the token
// failure classes.
func classifyTokenError(err error) error {
	ve, ok := err.(*jwt.ValidationError)
	if !ok {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
	switch {
	case ve.Errors&jwt.ValidationErrorExpired != 0:
		return apperrors.ErrExpiredToken
	case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
		return apperrors.ErrBadSignature
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}
}

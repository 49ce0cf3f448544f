package service

import (
	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned when an access token is malformed, expired or badly signed.
var ErrInvalidToken = errors.New("invalid access token")

// TokenVerifier turns an access token issued by the identity service into the caller it names.
type TokenVerifier interface {
	// VerifyAccessToken validates the token and returns the caller's identity and roles.
	VerifyAccessToken(tokenString string) (entity.Caller, error)
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accessClaims is the payload of an access token.
type accessClaims struct {
	Roles []string `json:"roles"`
	Type  string   `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 access tokens signed with the shared access secret.
type jwtVerifier struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// VerifyAccessToken checks signature and expiry, then maps `sub` and `roles` onto a Caller.
// Unknown role names are dropped. Refresh tokens are refused.
func (v *jwtVerifier) VerifyAccessToken(tokenString string) (entity.Caller, error) {
	var claims accessClaims

	token, err := v.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return entity.Caller{}, errors.Wrap(service.ErrInvalidToken, errorMessage(err))
	}

	if claims.Type != "" && claims.Type != "access" {
		return entity.Caller{}, errors.Wrap(service.ErrInvalidToken, "not an access token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return entity.Caller{}, errors.Wrap(service.ErrInvalidToken, "subject is not a user id")
	}

	return entity.Caller{
		UserID: userID,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}, nil
}

func errorMessage(err error) string {
	if err == nil {
		return "token is not valid"
	}

	return err.Error()
}

package utils

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"social-events-api/core/config"
	"social-events-api/core/errors"
)

// TokenClaims is the actor identity resolved from a bearer credential.
// Issuance lives outside this service; we only verify and decode.
type TokenClaims struct {
	UserID   uuid.UUID  `json:"user_id"`
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	Email    string     `json:"email"`
	Name     string     `json:"name"`
	Nick     string     `json:"nick"`
	Type     int        `json:"type"`
	Scope    string     `json:"scope"`
	jwt.RegisteredClaims
}

// GetTokenFromHeader extracts the bearer token from the Authorization header.
func GetTokenFromHeader(c echo.Context) (string, *errors.AppError) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", errors.NewAppError(errors.ErrMissingAuthorizationHeader, "Authorization header is required", nil)
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.NewAppError(errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token", nil)
	}

	return parts[1], nil
}

// ValidateAndParseToken verifies the token signature and returns its claims.
func ValidateAndParseToken(token string) (*TokenClaims, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Server configuration not initialized", nil)
	}

	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), jwt.ErrTokenExpired.Error()) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "Token has expired", err)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}

	if !parsed.Valid || claims.UserID == uuid.Nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token claims", nil)
	}

	return claims, nil
}

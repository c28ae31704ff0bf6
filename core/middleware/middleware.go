package middleware

import (
	"github.com/labstack/echo/v4"

	"social-events-api/core/cache"
	"social-events-api/core/constants"
	"social-events-api/core/controller"
	"social-events-api/core/errors"
	"social-events-api/core/logger"
	"social-events-api/core/utils"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware resolves the bearer credential into TokenClaims and stores
// them in the request context under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, appErr := utils.GetTokenFromHeader(c)
			if appErr != nil {
				return controller.NewErrorResponse(controller.HTTPStatus(appErr.Code), appErr.Code, appErr.Message)
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					// Redis being down must not lock everyone out.
					logger.Warn("Middleware:AuthMiddleware:BlacklistCheck", "error", err)
				} else if blacklisted {
					return controller.NewErrorResponse(controller.HTTPStatus(errors.ErrUnauthorized), errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			claims, appErr := utils.ValidateAndParseToken(token)
			if appErr != nil {
				return controller.NewErrorResponse(controller.HTTPStatus(appErr.Code), appErr.Code, appErr.Message)
			}

			if claims.Scope != "" && claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(controller.HTTPStatus(errors.ErrUnauthorized), errors.ErrUnauthorized, "Token scope is not valid for this resource")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

package http

import (
	"net/http"
	"strings"

	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

// AuthRequired validates the bearer token and stores the authenticated
// user's id in the echo context.
func AuthRequired(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header required (Bearer <token>)",
				})
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(userIDContextKey, userID)
			return next(ctx)
		}
	}
}

func authenticatedUserID(ctx echo.Context) (kernel.UUID, bool) {
	userID, ok := ctx.Get(userIDContextKey).(kernel.UUID)
	return userID, ok
}

package middleware

import (
	"errors"
	"net/http"

	"cardapio/internal/repository"

	"github.com/labstack/echo/v4"
)

// TokenVersionGuard rejects tokens whose tv no longer matches users.token_version
// (forced logout) and tokens of deactivated users.
func TokenVersionGuard(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(CtxUserIDKey).(int64)
			if !ok || userID <= 0 {
				return unauthorized(c)
			}
			tv, ok := c.Get(CtxTokenVersionKey).(int)
			if !ok || tv < 0 {
				return unauthorized(c)
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if errors.Is(err, repository.ErrNotFound) {
				return unauthorized(c)
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal error"})
			}

			if !user.IsActive || user.TokenVersion != tv {
				return unauthorized(c)
			}
			return next(c)
		}
	}
}

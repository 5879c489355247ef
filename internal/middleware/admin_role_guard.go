package middleware

import (
	"cardapio/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// AdminRoleGuard lets only ADMIN tokens through. Runs after AuthJWT.
func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxUserRoleKey).(model.Role)
			if !ok || role == "" {
				return unauthorized(c)
			}
			if role != model.RoleAdmin {
				return forbidden(c, "admin only")
			}
			return next(c)
		}
	}
}

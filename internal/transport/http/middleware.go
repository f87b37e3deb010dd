package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/service"
	"github.com/luxestate/luxestate-api/internal/util"
)

const (
	contextAdminKey = "auth.admin"
	contextTokenKey = "auth.token"
)

func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			token := strings.TrimSpace(parts[1])
			admin, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error("session invalid or expired"))
			}
			c.Set(contextAdminKey, admin)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

// RequireSuperuser must run after RequireAuth.
func RequireSuperuser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, ok := c.Get(contextAdminKey).(*domain.Admin)
			if !ok || admin == nil {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			if !admin.IsSuperuser() {
				return c.JSON(http.StatusForbidden, util.Error("superuser privileges required"))
			}
			return next(c)
		}
	}
}

func CurrentAdmin(c echo.Context) (*domain.Admin, bool) {
	admin, ok := c.Get(contextAdminKey).(*domain.Admin)
	return admin, ok
}

func CurrentToken(c echo.Context) (string, bool) {
	token, ok := c.Get(contextTokenKey).(string)
	return token, ok
}

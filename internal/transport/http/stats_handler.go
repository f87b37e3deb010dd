package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luxestate/luxestate-api/internal/service"
	"github.com/luxestate/luxestate-api/internal/util"
)

type StatsHandler struct {
	stats *service.StatsService
}

func RegisterStats(e *echo.Echo, stats *service.StatsService, auth *service.AuthService) {
	handler := &StatsHandler{stats: stats}

	admin := e.Group("/api/v1/admin/stats", RequireAuth(auth))
	admin.GET("", handler.dashboard)
}

func (h *StatsHandler) dashboard(c echo.Context) error {
	summary, monthly, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"stats":             summary,
		"enquiries_monthly": monthly,
	})
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/luxestate/luxestate-api/internal/service"
	"github.com/luxestate/luxestate-api/internal/util"
)

type StaffHandler struct {
	auth *service.AuthService
}

// RegisterStaff wires the staff management routes. Every route requires a
// superuser session.
func RegisterStaff(e *echo.Echo, auth *service.AuthService) {
	handler := &StaffHandler{auth: auth}

	group := e.Group("/api/v1/admin/staff", RequireAuth(auth), RequireSuperuser())
	group.GET("", handler.list)
	group.POST("", handler.create)
	group.DELETE("/:id", handler.delete)
}

func (h *StaffHandler) list(c echo.Context) error {
	admins, err := h.auth.ListStaff(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	out := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, buildAdminResponse(&admins[i]))
	}
	return c.JSON(http.StatusOK, util.Data("staff", out))
}

func (h *StaffHandler) create(c echo.Context) error {
	var req CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, util.Error("name, email and password are required"))
	}

	admin, err := h.auth.CreateStaff(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordPolicy), errors.Is(err, service.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrEmailAlreadyUsed):
			return c.JSON(http.StatusConflict, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}
	return c.JSON(http.StatusCreated, util.Data("staff", buildAdminResponse(admin)))
}

func (h *StaffHandler) delete(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid staff id"))
	}

	actor, ok := CurrentAdmin(c)
	if !ok || actor == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	if err := h.auth.DeleteStaff(c.Request().Context(), actor.ID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDeletion):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrAdminNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}
	return c.JSON(http.StatusOK, util.Success())
}

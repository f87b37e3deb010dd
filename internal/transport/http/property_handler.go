package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/service"
	"github.com/luxestate/luxestate-api/internal/util"
)

type PropertyHandler struct {
	properties *service.PropertyService
}

func RegisterProperties(e *echo.Echo, properties *service.PropertyService, auth *service.AuthService) {
	handler := &PropertyHandler{properties: properties}

	public := e.Group("/api/v1/properties")
	public.GET("", handler.list)
	public.GET("/:id", handler.get)

	admin := e.Group("/api/v1/admin/properties", RequireAuth(auth))
	admin.GET("", handler.list)
	admin.POST("", handler.create)
	admin.PUT("/:id", handler.update)
	admin.DELETE("/:id", handler.delete)
}

func (h *PropertyHandler) list(c echo.Context) error {
	filter := domain.PropertyListFilter{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}
	if loc := strings.TrimSpace(c.QueryParam("location")); loc != "" {
		filter.Location = &loc
	}
	if tags := strings.TrimSpace(c.QueryParam("tags")); tags != "" {
		filter.Tags = splitCSV(tags)
	}
	// Public listing never exposes unavailable properties; the back office
	// asks for everything.
	filter.OnlyAvailable = !isAdminPath(c)

	items, err := h.properties.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Data("properties", items))
}

func (h *PropertyHandler) get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid property id"))
	}

	property, err := h.properties.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Data("property", property))
}

func (h *PropertyHandler) create(c echo.Context) error {
	var fields domain.PropertyFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	property, err := h.properties.Create(c.Request().Context(), fields)
	if err != nil {
		if errors.Is(err, service.ErrPropertyValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusCreated, util.Data("property", property))
}

func (h *PropertyHandler) update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid property id"))
	}

	var fields domain.PropertyFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	property, err := h.properties.Update(c.Request().Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPropertyValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrPropertyNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}
	return c.JSON(http.StatusOK, util.Data("property", property))
}

func (h *PropertyHandler) delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid property id"))
	}

	if err := h.properties.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Success())
}

func isAdminPath(c echo.Context) bool {
	return strings.HasPrefix(c.Path(), "/api/v1/admin/")
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

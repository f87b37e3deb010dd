package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/service"
	"github.com/luxestate/luxestate-api/internal/util"
)

type EnquiryHandler struct {
	enquiries *service.EnquiryService
}

func RegisterEnquiries(e *echo.Echo, enquiries *service.EnquiryService, auth *service.AuthService) {
	handler := &EnquiryHandler{enquiries: enquiries}

	e.POST("/api/v1/enquiries", handler.create)

	admin := e.Group("/api/v1/admin/enquiries", RequireAuth(auth))
	admin.GET("", handler.list)
	admin.PATCH("/:id/status", handler.updateStatus)
}

func (h *EnquiryHandler) create(c echo.Context) error {
	var req struct {
		PropertyID *uuid.UUID `json:"property_id"`
		Name       string     `json:"name"`
		Email      string     `json:"email"`
		Phone      *string    `json:"phone"`
		Message    string     `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	enquiry, err := h.enquiries.Create(c.Request().Context(), service.EnquiryCreateInput{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrEnquiryValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusCreated, util.Data("enquiry", enquiry))
}

func (h *EnquiryHandler) list(c echo.Context) error {
	filter := domain.EnquiryListFilter{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		for _, status := range splitCSV(raw) {
			filter.Statuses = append(filter.Statuses, domain.EnquiryStatus(status))
		}
	}

	items, err := h.enquiries.List(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrEnquiryValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Data("enquiries", items))
}

func (h *EnquiryHandler) updateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid enquiry id"))
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	enquiry, err := h.enquiries.UpdateStatus(c.Request().Context(), id, domain.EnquiryStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnquiryValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrEnquiryNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}
	return c.JSON(http.StatusOK, util.Data("enquiry", enquiry))
}

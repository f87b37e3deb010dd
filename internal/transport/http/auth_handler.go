package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/luxestate/luxestate-api/internal/service"
	"github.com/luxestate/luxestate-api/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/v1/auth")
	group.POST("/login", handler.login)
	group.POST("/google", handler.loginWithGoogle)
	group.POST("/forgot-password", handler.forgotPassword)
	group.POST("/verify-otp", handler.verifyOTP)
	group.POST("/reset-password", handler.resetPassword)

	authed := e.Group("/api/v1/auth", RequireAuth(auth))
	authed.POST("/logout", handler.logout)
	authed.POST("/change-password", handler.changePassword)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, util.Error("email and password are required"))
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, buildLoginResponse(result))
}

func (h *AuthHandler) loginWithGoogle(c echo.Context) error {
	var req GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("id_token is required"))
	}

	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, buildLoginResponse(result))
}

func (h *AuthHandler) logout(c echo.Context) error {
	token, ok := CurrentToken(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Success())
}

// forgotPassword responds with the same success shape whether or not the
// email belongs to an admin account.
func (h *AuthHandler) forgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("email is required"))
	}

	if err := h.auth.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrOTPDelivery) {
			return c.JSON(http.StatusInternalServerError, util.Error("failed to send verification code, please try again"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
	return c.JSON(http.StatusOK, util.Success())
}

func (h *AuthHandler) verifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Code) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("email and verification code are required"))
	}

	resetToken, err := h.auth.VerifyOTP(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrOTPInvalid) {
			return c.JSON(http.StatusBadRequest, util.Error("invalid or expired verification code, please try again"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"success":    true,
		"resetToken": resetToken,
	})
}

func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.ResetToken) == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, util.Error("reset token and new password are required"))
	}

	err := h.auth.ResetPassword(c.Request().Context(), req.ResetToken, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordPolicy):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrResetTokenInvalid):
			return c.JSON(http.StatusBadRequest, util.Error("reset link has expired, please start the process again"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}
	return c.JSON(http.StatusOK, util.Success())
}

func (h *AuthHandler) changePassword(c echo.Context) error {
	admin, ok := CurrentAdmin(c)
	if !ok || admin == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, util.Error("both current and new passwords are required"))
	}

	err := h.auth.ChangePassword(c.Request().Context(), admin.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordPolicy), errors.Is(err, service.ErrPasswordMismatch):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrAdminNotFound):
			return c.JSON(http.StatusNotFound, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
		}
	}
	return c.JSON(http.StatusOK, util.Success())
}

func buildLoginResponse(result *service.LoginResult) util.Envelope {
	return util.Envelope{
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
		"admin":      buildAdminResponse(result.Admin),
	}
}

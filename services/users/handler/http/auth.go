package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/internal/utils"
	"github.com/bankedge/gateway/services/users"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC users.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC users.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles OTP send requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var request models.OtpRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	sessionID, err := h.authUC.SendOTP(c.Request().Context(), request.Phone)
	if err != nil {
		logger.Warn("OTP send failed", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.OtpSendResponse{
		Success:   true,
		Message:   "OTP sent",
		SessionID: sessionID,
	})
}

// VerifyOTP handles OTP verification and customer login
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.OtpVerifyRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.VerifyOTP(c.Request().Context(), &request)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// LoginAdmin handles administrator credential login. The token goes out
// both in the JSON body and as an HttpOnly SameSite=Strict cookie for the
// browser console; API callers use the bearer token only.
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	var request models.AdminLoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.LoginAdmin(c.Request().Context(), &request)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	c.Response().Header().Add("Set-Cookie", sessionCookie(response.Token))

	return c.JSON(http.StatusOK, response)
}

// RefreshToken handles bearer token refresh requests
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authorization header is required")
	}

	response, err := h.authUC.RefreshToken(c.Request().Context(), token)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// sessionCookie builds the Set-Cookie header value for the admin console.
// SameSite=Strict is set manually to keep the attribute on older proxies.
func sessionCookie(token string) string {
	const maxAge = 60 * 60 * 24 // 1 day
	return fmt.Sprintf("token=%s; Path=/; HttpOnly; SameSite=Strict; Max-Age=%d", token, maxAge)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

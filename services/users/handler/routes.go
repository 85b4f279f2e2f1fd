package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bankedge/gateway/internal/pkg/middleware"
	"github.com/bankedge/gateway/internal/pkg/models"
	httpHandler "github.com/bankedge/gateway/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the users service
type Handler struct {
	authHandler *httpHandler.AuthHandler
	userHandler *httpHandler.UserHandler
	otpThrottle echo.MiddlewareFunc
	cfg         *models.Config
}

// NewHandler creates and initializes the users service handler
func NewHandler(
	authHandler *httpHandler.AuthHandler,
	userHandler *httpHandler.UserHandler,
	otpThrottle echo.MiddlewareFunc,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		otpThrottle: otpThrottle,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth and user-administration routes.
// Access control is the AuthorizationGate's job; routes carry no
// per-route auth middleware of their own.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	if h.otpThrottle != nil {
		authGroup.POST("/send-otp", h.authHandler.SendOTP, h.otpThrottle)
	} else {
		authGroup.POST("/send-otp", h.authHandler.SendOTP)
	}
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/admin-login", h.authHandler.LoginAdmin)
	authGroup.POST("/refresh", h.authHandler.RefreshToken)

	userGroup := e.Group("/users")
	userGroup.POST("/create", h.userHandler.CreateUser)
	userGroup.GET("/by-username", h.userHandler.GetUserByUsername)
	userGroup.GET("/:id", h.userHandler.GetUser)
	userGroup.PUT("/:id/status", h.userHandler.UpdateStatus)
	userGroup.DELETE("/:id", h.userHandler.DeleteUser)
}

// NewOTPThrottle builds the Redis-backed OTP send throttle from config.
// Returns nil when Redis is not configured.
func NewOTPThrottle(cfg middleware.OTPThrottleConfig) echo.MiddlewareFunc {
	if cfg.RedisClient == nil {
		return nil
	}
	return middleware.OTPThrottleMiddleware(cfg)
}

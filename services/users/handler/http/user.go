package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bankedge/gateway/internal/pkg/logger"
	"github.com/bankedge/gateway/internal/pkg/models"
	"github.com/bankedge/gateway/internal/utils"
	"github.com/bankedge/gateway/services/users"
)

// UserHandler handles HTTP requests for user administration
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// CreateUser handles user creation requests
func (h *UserHandler) CreateUser(c echo.Context) error {
	var request models.UserRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &request)
	if err != nil {
		logger.Warn("Failed to create user",
			logger.String("username", request.Username),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// GetUser handles user retrieval by id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// GetUserByUsername handles user retrieval by username
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return utils.BadRequestResponse(c, "username query parameter is required")
	}

	user, err := h.userUC.GetUserByUsername(c.Request().Context(), username)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateStatus enables or disables a user
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	enabled, err := strconv.ParseBool(c.QueryParam("enabled"))
	if err != nil {
		return utils.BadRequestResponse(c, "enabled query parameter is required")
	}

	user, err := h.userUC.UpdateUserStatus(c.Request().Context(), id, enabled)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"matchtrack/internal/errors"
	"matchtrack/internal/model"
	"matchtrack/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	userService service.UserService
	audit       service.Auditor
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, audit service.Auditor) *UserHandler {
	return &UserHandler{userService: userService, audit: audit}
}

// ResetPasswordRequest represents a password reset request.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// List godoc
// @Summary List users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// ResetPassword godoc
// @Summary Reset a user's password (self or admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id}/password [put]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	claims := CurrentClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if claims.Role != model.RoleAdmin && claims.UserID != uint(id) {
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: "Unauthorized",
			Code:  "FORBIDDEN",
		})
	}

	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ResetPassword(c.Request().Context(), uint(id), req.Password); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.audit.Record(c.Request().Context(), claims.Username, "user.reset_password", "user", uint(id), "")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Password updated",
	})
}

// Delete godoc
// @Summary Delete a user (admin only, not self)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	claims := CurrentClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	if err := h.userService.DeleteUser(c.Request().Context(), claims.UserID, uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	h.audit.Record(c.Request().Context(), claims.Username, "user.delete", "user", uint(id), "")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User deleted",
	})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"matchtrack/internal/errors"
	"matchtrack/internal/service"
)

// PlayerHandler handles player endpoints.
type PlayerHandler struct {
	playerService service.PlayerService
	audit         service.Auditor
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(playerService service.PlayerService, audit service.Auditor) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, audit: audit}
}

// CreatePlayerRequest represents an explicit player creation request.
type CreatePlayerRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position"`
}

// List godoc
// @Summary List players with embedded match history
// @Tags players
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.PlayerSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /players [get]
func (h *PlayerHandler) List(c echo.Context) error {
	players, err := h.playerService.ListPlayers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, players)
}

// Create godoc
// @Summary Create a player with zeroed counters (admin only)
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePlayerRequest true "Player data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	var req CreatePlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.playerService.CreatePlayer(c.Request().Context(), req.Name, req.Position)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if claims := CurrentClaims(c); claims != nil {
		h.audit.Record(c.Request().Context(), claims.Username, "player.create", "player", id, req.Name)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      id,
	})
}

// Delete godoc
// @Summary Delete a player and their performance rows (admin only)
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param id path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /players/{id} [delete]
func (h *PlayerHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.playerService.DeletePlayer(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if claims := CurrentClaims(c); claims != nil {
		h.audit.Record(c.Request().Context(), claims.Username, "player.delete", "player", uint(id), "")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"matchtrack/internal/errors"
	"matchtrack/internal/service"
)

// MatchHandler handles match endpoints.
type MatchHandler struct {
	matchService service.MatchService
	audit        service.Auditor
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matchService service.MatchService, audit service.Auditor) *MatchHandler {
	return &MatchHandler{matchService: matchService, audit: audit}
}

// CreateMatchRequest represents a match submission.
type CreateMatchRequest struct {
	Date    string                     `json:"date" validate:"required,datetime=2006-01-02"`
	Players []service.PerformanceInput `json:"players" validate:"required,dive"`
}

// List godoc
// @Summary List matches, most recent first
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Match
// @Failure 401 {object} errors.ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) List(c echo.Context) error {
	matches, err := h.matchService.ListMatches(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, matches)
}

// Create godoc
// @Summary Record a match and its player performances (admin only)
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMatchRequest true "Match data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /matches [post]
func (h *MatchHandler) Create(c echo.Context) error {
	var req CreateMatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	matchID, err := h.matchService.CreateMatch(c.Request().Context(), req.Date, req.Players)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if claims := CurrentClaims(c); claims != nil {
		h.audit.Record(c.Request().Context(), claims.Username, "match.create", "match", matchID, req.Date)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"matchId": matchID,
	})
}

// Delete godoc
// @Summary Delete a match and reverse its aggregate effects (admin only)
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /matches/{id} [delete]
func (h *MatchHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.matchService.DeleteMatch(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if claims := CurrentClaims(c); claims != nil {
		h.audit.Record(c.Request().Context(), claims.Username, "match.delete", "match", uint(id), "")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

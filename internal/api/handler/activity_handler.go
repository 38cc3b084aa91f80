package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List returns activity entries, newest first.
//
// @Summary      Activity log
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        username  query     string  false  "Filter by account"
// @Param        limit     query     int     false  "Max entries (default 50, max 500)"
// @Success      200       {array}   domain.Activity
// @Failure      400       {object}  map[string]string
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}

	filter := ports.ActivityFilter{Username: c.QueryParam("username")}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		filter.Limit = n
	}

	entries, err := h.service.List(c.Request().Context(), admin, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

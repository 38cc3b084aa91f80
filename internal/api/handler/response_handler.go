package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/api/metrics"
	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

type ResponseHandler struct {
	service ports.RSVPService
}

func NewResponseHandler(service ports.RSVPService) *ResponseHandler {
	return &ResponseHandler{service: service}
}

// View returns the guest's roster reconciled with its stored responses.
//
// @Summary      Guest view
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  guestViewResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/guest/view [get]
func (h *ResponseHandler) View(c echo.Context) error {
	g, err := ctxGuest(c)
	if err != nil {
		return err
	}
	view, err := h.service.View(c.Request().Context(), g)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, guestViewResponse{
		Account:     toAccountResponse(view.Account),
		Records:     view.Records,
		HasAccepted: view.HasAccepted,
	})
}

// List returns all responses to an admin, or the caller's own to a guest.
//
// @Summary      List responses
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.RSVPResponse
// @Router       /api/form_responses [get]
func (h *ResponseHandler) List(c echo.Context) error {
	return h.list(c, "")
}

// ListForAccount returns the stored responses of one account.
//
// @Summary      List responses of an account
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Account username"
// @Success      200       {array}   domain.RSVPResponse
// @Failure      403       {object}  map[string]string
// @Router       /api/form_responses/{username} [get]
func (h *ResponseHandler) ListForAccount(c echo.Context) error {
	return h.list(c, c.Param("username"))
}

func (h *ResponseHandler) list(c echo.Context, username string) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var out []domain.RSVPResponse
	switch s := sess.(type) {
	case session.Admin:
		all, err := h.service.ListAll(ctx, s)
		if err != nil {
			return err
		}
		out = make([]domain.RSVPResponse, 0, len(all))
		for _, r := range all {
			if username == "" || r.Username == username {
				out = append(out, r)
			}
		}
	case session.Guest:
		if username != "" && !session.CanAccess(s, username) {
			return domain.ErrForbidden
		}
		if out, err = h.service.Responses(ctx, s); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, out)
}

// Submit stores one response for a person on the guest's roster.
//
// @Summary      Submit response
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      responseRequest  true  "Response"
// @Success      200   {object}  domain.RSVPResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/form_responses [post]
func (h *ResponseHandler) Submit(c echo.Context) error {
	g, err := ctxGuest(c)
	if err != nil {
		return err
	}
	var req responseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	saved, err := h.service.Submit(c.Request().Context(), g, req.toDomain())
	if err != nil {
		return err
	}
	metrics.RSVPWritesTotal.WithLabelValues(acceptanceLabel(*saved)).Inc()
	return c.JSON(http.StatusOK, saved)
}

// SubmitBatch stores every record of the guest's reconciled set. Records are
// written independently: 200 when all succeed, 207 with per-record results
// otherwise.
//
// @Summary      Submit all responses
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      batchRequest  true  "Responses"
// @Success      200   {object}  batchResponse
// @Success      207   {object}  batchResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/form_responses/batch [post]
func (h *ResponseHandler) SubmitBatch(c echo.Context) error {
	g, err := ctxGuest(c)
	if err != nil {
		return err
	}
	var req batchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	records := make([]domain.RSVPResponse, 0, len(req.Responses))
	for _, r := range req.Responses {
		records = append(records, r.toDomain())
	}

	res, err := h.service.SubmitBatch(c.Request().Context(), g, records)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.RSVPBatchesTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	for i, it := range res.Items {
		if it.OK {
			metrics.RSVPWritesTotal.WithLabelValues(acceptanceLabel(records[i])).Inc()
		}
	}
	status := http.StatusOK
	if !res.OK() {
		status = http.StatusMultiStatus
		metrics.RSVPBatchesTotal.WithLabelValues("partial").Inc()
	} else {
		metrics.RSVPBatchesTotal.WithLabelValues("ok").Inc()
	}
	return c.JSON(status, toBatchResponse(res))
}

// Summary groups every response and comment by account, with totals.
//
// @Summary      Admin summary
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  aggregate.Summary
// @Router       /api/admin/summary [get]
func (h *ResponseHandler) Summary(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	sum, err := h.service.Summary(c.Request().Context(), admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}

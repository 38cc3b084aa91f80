package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/api/metrics"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Add appends a comment to the guest's account.
//
// @Summary      Leave a message
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/comments [post]
func (h *CommentHandler) Add(c echo.Context) error {
	g, err := ctxGuest(c)
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.Add(c.Request().Context(), g, req.Comment)
	if err != nil {
		return err
	}
	metrics.CommentsTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}

// ListAll returns every comment in submission order.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Comment
// @Router       /api/comments [get]
func (h *CommentHandler) ListAll(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	comments, err := h.service.ListAll(c.Request().Context(), admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// ListForAccount returns one account's comments in submission order.
//
// @Summary      List comments of an account
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Account username"
// @Success      200       {array}   domain.Comment
// @Failure      403       {object}  map[string]string
// @Router       /api/comments/{username} [get]
func (h *CommentHandler) ListForAccount(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	comments, err := h.service.ListForAccount(c.Request().Context(), sess, c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

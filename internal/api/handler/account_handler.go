package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/api/metrics"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Get returns one account with its personal message.
//
// @Summary      Get account
// @Description  Guests may only fetch their own account.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Account username"
// @Success      200       {object}  accountResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/users/{username} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	acc, err := h.service.Get(c.Request().Context(), sess, c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(acc))
}

// List returns every account.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   accountResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *AccountHandler) List(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	accounts, err := h.service.List(c.Request().Context(), admin)
	if err != nil {
		return err
	}
	out := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds an account.
//
// @Summary      Create account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAccountRequest  true  "New account"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users [post]
func (h *AccountHandler) Create(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	var req createAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	acc, err := h.service.Create(c.Request().Context(), admin, ports.CreateAccountInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Message:  req.Message,
	})
	if err != nil {
		return err
	}
	metrics.AccountsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toAccountResponse(acc))
}

// Update overwrites the personal message and optionally resets the password.
//
// @Summary      Update account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string                true  "Account username"
// @Param        body      body      updateAccountRequest  true  "Changes"
// @Success      200       {object}  accountResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/users/{username} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	var req updateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	acc, err := h.service.Update(c.Request().Context(), admin, c.Param("username"), ports.UpdateAccountInput{
		Message:  req.Message,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.AccountsTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, toAccountResponse(acc))
}

// Delete removes an account with its persons, responses and comments.
//
// @Summary      Delete account
// @Tags         accounts
// @Security     BearerAuth
// @Param        username  path   string  true   "Account username"
// @Param        confirm   query  bool    true   "Must be true"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      428  {object}  map[string]string
// @Router       /api/users/{username} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), admin, c.Param("username"), confirmed(c)); err != nil {
		return err
	}
	metrics.AccountsTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

func confirmed(c echo.Context) bool {
	ok, _ := strconv.ParseBool(c.QueryParam("confirm"))
	return ok
}

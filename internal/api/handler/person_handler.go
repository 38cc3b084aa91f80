package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

type PersonHandler struct {
	service ports.PersonService
}

func NewPersonHandler(service ports.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// ListForAccount returns the invited persons of one account.
//
// @Summary      List invited persons of an account
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Account username"
// @Success      200       {array}   personResponse
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /api/name_surnames/{username} [get]
func (h *PersonHandler) ListForAccount(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	persons, err := h.service.ListForAccount(c.Request().Context(), sess, c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPersonResponses(persons))
}

// ListAll returns every invited person.
//
// @Summary      List all invited persons
// @Tags         persons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   personResponse
// @Router       /api/namesurnames [get]
func (h *PersonHandler) ListAll(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	persons, err := h.service.ListAll(c.Request().Context(), admin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPersonResponses(persons))
}

// Add puts a person on an account's roster. A blank name is a no-op.
//
// @Summary      Add invited person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addPersonRequest  true  "Person"
// @Success      201   {object}  personResponse
// @Success      204
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/namesurnames [post]
func (h *PersonHandler) Add(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req addPersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Add(c.Request().Context(), sess, req.Username, req.NameSurname)
	if err != nil {
		return err
	}
	if p == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusCreated, toPersonResponse(*p))
}

// Delete removes a person, matched by exact name within the account, and
// its response.
//
// @Summary      Delete invited person
// @Tags         persons
// @Security     BearerAuth
// @Param        name_surname   path   string  true  "Exact name"
// @Param        user_username  query  string  true  "Owning account"
// @Param        confirm        query  bool    true  "Must be true"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      428  {object}  map[string]string
// @Router       /api/namesurnames/{name_surname} [delete]
func (h *PersonHandler) Delete(c echo.Context) error {
	admin, err := ctxAdmin(c)
	if err != nil {
		return err
	}
	username := c.QueryParam("user_username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_username is required")
	}
	if err := h.service.Delete(c.Request().Context(), admin, username, pathParam(c, "name_surname"), confirmed(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathParam returns the unescaped value of a path parameter. Echo leaves
// parameters escaped when the request carried a raw path.
func pathParam(c echo.Context, name string) string {
	v := c.Param(name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

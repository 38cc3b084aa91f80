package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/api/middleware"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

// ctxSession returns the session injected by the Auth middleware. Its
// absence means the route was wired without Auth; reject with 401.
func ctxSession(c echo.Context) (session.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sess, nil
}

func ctxGuest(c echo.Context) (session.Guest, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return session.Guest{}, err
	}
	return session.AsGuest(sess)
}

func ctxAdmin(c echo.Context) (session.Admin, error) {
	sess, err := ctxSession(c)
	if err != nil {
		return session.Admin{}, err
	}
	return session.AsAdmin(sess)
}

// bindAndValidate decodes the request body into req and runs the struct
// validator. Both failures are reported as 400.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

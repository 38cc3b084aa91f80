package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/session"
)

const sessionKey = "session"

// SessionChecker reports whether a login session is still live.
type SessionChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Auth validates the JWT, checks that its session has not been revoked and
// stores the resulting session.Session on the context.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["username"].(string)
			role, _ := claims["role"].(string)
			sid, _ := claims["jti"].(string)

			sess, err := session.New(domain.Role(role), username, sid)
			if err != nil || sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			live, err := sessions.Exists(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			if !live {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrSessionExpired.Error())
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by Auth.
func SessionFrom(c echo.Context) (session.Session, bool) {
	sess, ok := c.Get(sessionKey).(session.Session)
	return sess, ok && sess != nil
}

// WithSession stores sess on the context. Handlers under test use it in
// place of Auth.
func WithSession(c echo.Context, sess session.Session) {
	c.Set(sessionKey, sess)
}

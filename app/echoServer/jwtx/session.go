// app/echoServer/jwtx/session.go
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
)

const sessionKey = "session"

// SessionFromToken builds the explicit Session value from the verified JWT
// that echo-jwt left in the request context. Nothing downstream reads auth
// state from anywhere else.
func SessionFromToken(c echo.Context) (model.Session, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return model.Session{}, errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return model.Session{}, errors.New("invalid jwt claims")
	}

	sess := model.Session{Token: tok.Raw}
	if f, ok := claims["sub"].(float64); ok {
		sess.UserID = int64(f)
	}
	if r, ok := claims["role"].(string); ok {
		sess.Role = r
	}
	if sess.UserID == 0 {
		return model.Session{}, errors.New("sub missing in claims")
	}
	return sess, nil
}

func SetSession(c echo.Context, sess model.Session) { c.Set(sessionKey, sess) }

// Session returns the caller's session; the zero value means anonymous
// (payment callbacks arrive without credentials).
func Session(c echo.Context) model.Session {
	sess, _ := c.Get(sessionKey).(model.Session)
	return sess
}

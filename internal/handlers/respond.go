package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ferrestock/internal/common"
	"ferrestock/internal/sessions"
)

func currentSession(c echo.Context) *sessions.Session {
	return common.SessionFromContext(c.Request().Context())
}

// isAdmin is the per-handler authorization check. Reads stay open; mutation
// handlers and the user listing call this before touching anything.
func isAdmin(c echo.Context) bool {
	return currentSession(c).IsAdmin()
}

// currentUserID returns the acting user's id for movement attribution, nil
// for anonymous requests.
func currentUserID(c echo.Context) *int {
	sess := currentSession(c)
	if sess == nil {
		return nil
	}
	return &sess.UserID
}

func jsonError(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

func jsonUnauthorized(c echo.Context) error {
	return jsonError(c, http.StatusForbidden, "No autorizado")
}

func jsonSuccess(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func jsonCreated(c echo.Context, id int) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": id})
}

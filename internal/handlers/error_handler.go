package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewHTTPErrorHandler maps uncaught errors to the site's error policy: API
// paths answer JSON, unknown or forbidden pages bounce to the landing page
// keeping the original status code, and anything else is a plain-text 500.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Error interno del servidor"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
		}

		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			_ = c.JSON(code, echo.Map{"error": message})
			return
		}

		switch code {
		case http.StatusNotFound, http.StatusForbidden:
			// Location header to the landing page while keeping the
			// error status.
			c.Response().Header().Set(echo.HeaderLocation, "/base")
			_ = c.NoContent(code)
		default:
			_ = c.String(http.StatusInternalServerError, "Error interno del servidor")
		}
	}
}

package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ferrestock/internal/common"
	"ferrestock/internal/sessions"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "ferrestock_session"

type SessionMiddleware struct {
	store  sessions.Store
	logger *zap.Logger
}

func NewSessionMiddleware(store sessions.Store, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{store: store, logger: logger}
}

// LoadSession resolves the session cookie into the request context. It never
// rejects a request: authorization is each handler's own decision, and a
// missing or invalid cookie just means an anonymous request.
func (m *SessionMiddleware) LoadSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			sess, err := m.store.Get(ctx, cookie.Value)
			if err != nil {
				m.logger.Warn("session lookup failed", zap.Error(err))
				return next(c)
			}
			if sess == nil {
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(common.WithSession(ctx, sess)))
			return next(c)
		}
	}
}

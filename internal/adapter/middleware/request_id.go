package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lendhub-backend/internal/logger"
)

// RequestID tags every request with an id: the inbound X-Request-Id header
// when present, a fresh uuid otherwise. The id is echoed on the response
// and carried in the request context so log lines correlate.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			ctx := logger.WithRequestID(c.Request().Context(), rid)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

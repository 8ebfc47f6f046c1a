package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common/log"
)

const correlationIDHeader = "X-Correlation-ID"

// Context seeds the request context with a correlation id, taking the
// caller-provided header when present.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(correlationIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := log.WithCorrelationID(req.Context(), id)
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(correlationIDHeader, id)

			return next(c)
		}
	}
}

package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader correlates a response with the server logs
const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's request id, minting one when absent
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			c.Response().Header().Set(RequestIDHeader, id)
			c.Set("request_id", id)

			return next(c)
		}
	}
}

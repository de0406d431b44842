package middleware

import (
	"log"

	"github.com/labstack/echo/v4"

	apperrors "task-list.com/task-list/internal/errors"
	"task-list.com/task-list/internal/ratelimit"
)

// RateLimiter rejects clients that ran out of budget. When the limiter
// itself fails the request is let through.
func RateLimiter(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Printf("rate limiter unavailable: %v", err)
				return next(c)
			}

			if !allowed {
				return apperrors.ErrRateLimited
			}

			return next(c)
		}
	}
}

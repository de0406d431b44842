package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-list.com/task-list/internal/http/middlewares"
	"task-list.com/task-list/internal/ratelimit"
)

// Register wires middleware and routes onto e. A nil limiter disables rate
// limiting.
func Register(e *echo.Echo, h *Handler, limiter ratelimit.Limiter) {
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	if limiter != nil {
		e.Use(middleware.RateLimiter(limiter))
	}

	e.GET("/", h.Health)
	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}

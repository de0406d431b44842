package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-list.com/task-list/internal/errors"
)

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := apperrors.StatusCode(err)
	message := apperrors.PublicMessage(err)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = httpErrorMessage(he)
	} else if status == http.StatusInternalServerError {
		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Path(), err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, echo.Map{"error": message})
	}
	if writeErr != nil {
		log.Printf("failed to write error response: %v", writeErr)
	}
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case nil:
		return http.StatusText(he.Code)
	default:
		return fmt.Sprint(m)
	}
}

package errors

import (
	"errors"
	"net/http"
)

// Exception is an error that already knows the HTTP status and the
// client-facing message it should be answered with.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the message safe to send to a client. Anything that
// is not an Exception is reported with the generic status text.
func PublicMessage(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}

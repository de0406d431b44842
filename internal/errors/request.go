package errors

import "net/http"

var (
	ErrInvalidJSON = &Exception{
		Message:    "invalid JSON payload",
		StatusCode: http.StatusBadRequest,
	}

	ErrRateLimited = &Exception{
		Message:    "rate limit exceeded",
		StatusCode: http.StatusTooManyRequests,
	}
)

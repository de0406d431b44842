package errors

import "net/http"

var (
	ErrTaskNotFound = &Exception{
		Message:    "task not found",
		StatusCode: http.StatusNotFound,
	}

	ErrTitleRequired = &Exception{
		Message:    "title is required",
		StatusCode: http.StatusBadRequest,
	}

	ErrNoFieldsToUpdate = &Exception{
		Message:    "no fields to update",
		StatusCode: http.StatusBadRequest,
	}
)

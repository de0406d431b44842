package validators

import (
	"strings"

	dto "task-list.com/task-list/internal/data_models"
	apperrors "task-list.com/task-list/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if isBlank(r.Title) {
		return apperrors.ErrTitleRequired
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

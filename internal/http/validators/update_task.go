package validators

import (
	dto "task-list.com/task-list/internal/data_models"
	apperrors "task-list.com/task-list/internal/errors"
)

// ValidateUpdateTaskRequest only checks the title when its key was sent;
// a null title is rejected like a blank one.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title.Set && (r.Title.Value == nil || isBlank(*r.Title.Value)) {
		return apperrors.ErrTitleRequired
	}
	if r.IsEmpty() {
		return apperrors.ErrNoFieldsToUpdate
	}
	return nil
}

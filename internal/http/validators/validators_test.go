package validators

import (
	"errors"
	"testing"

	dto "task-list.com/task-list/internal/data_models"
	apperrors "task-list.com/task-list/internal/errors"
)

func TestValidateCreateTaskRequest(t *testing.T) {
	cases := map[string]error{
		"Buy milk":   nil,
		"  padded  ": nil,
		"":           apperrors.ErrTitleRequired,
		"   ":        apperrors.ErrTitleRequired,
		"\t\n":       apperrors.ErrTitleRequired,
	}

	for title, want := range cases {
		err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: title})
		if !errors.Is(err, want) {
			t.Errorf("title %q: expected %v, got %v", title, want, err)
		}
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateTaskRequest
		want error
	}{
		{"completed only", dto.UpdateTaskRequest{Completed: dto.Some(true)}, nil},
		{"new title", dto.UpdateTaskRequest{Title: dto.Some("Buy oat milk")}, nil},
		{"clear description", dto.UpdateTaskRequest{Description: dto.Null[string]()}, nil},
		{"blank title", dto.UpdateTaskRequest{Title: dto.Some("  "), Completed: dto.Some(true)}, apperrors.ErrTitleRequired},
		{"null title", dto.UpdateTaskRequest{Title: dto.Null[string](), Completed: dto.Some(true)}, apperrors.ErrTitleRequired},
		{"nothing supplied", dto.UpdateTaskRequest{}, apperrors.ErrNoFieldsToUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateUpdateTaskRequest(&tt.req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

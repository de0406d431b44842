package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	dto "task-list.com/task-list/internal/data_models"
	apperrors "task-list.com/task-list/internal/errors"
	model "task-list.com/task-list/internal/models"
	repository "task-list.com/task-list/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, title string, description *string) (*model.Task, error) {
	task, err := s.repo.Create(ctx, title, description)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	log.Printf("task created: id=%d title=%q", task.ID, task.Title)
	return task, nil
}

// UpdateTask applies the supplied fields and returns the task as stored
// afterwards.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	if req.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	affected, err := s.repo.Update(ctx, id, req.Changes())
	if err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	if affected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload updated task: %w", err)
	}

	log.Printf("task updated: id=%d title=%q", task.ID, task.Title)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if affected == 0 {
		return apperrors.ErrTaskNotFound
	}

	log.Printf("task deleted: id=%s", id)
	return nil
}

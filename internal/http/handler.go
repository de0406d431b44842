package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-list.com/task-list/internal/data_models"
	apperrors "task-list.com/task-list/internal/errors"
	"task-list.com/task-list/internal/http/validators"
	"task-list.com/task-list/internal/services"
)

const healthGreeting = "This is a request to the project root."

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, healthGreeting)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return storeFailure(err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return storeFailure(err, "failed to get task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Title, req.Description)
	if err != nil {
		return storeFailure(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return storeFailure(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return storeFailure(err, "failed to delete task")
	}

	return c.JSON(http.StatusOK, dto.DeleteTaskResponse{Message: "task deleted successfully"})
}

// storeFailure passes typed client errors through untouched. Anything else
// is logged with its cause and answered with message.
func storeFailure(err error, message string) error {
	if apperrors.StatusCode(err) != http.StatusInternalServerError {
		return err
	}

	log.Printf("%s: %v", message, err)
	return echo.NewHTTPError(http.StatusInternalServerError, message)
}

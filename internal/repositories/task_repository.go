package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-list.com/task-list/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, title string, description *string) (*model.Task, error) {
	record := &model.TaskRecord{
		Title:       title,
		Description: description,
		Completed:   0,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	task := record.ToTask()
	return &task, nil
}

// FindByID looks a task up by its id as given by the caller. SQLite applies
// the column's integer affinity, so "7" and 7 match the same row.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var record model.TaskRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	task := record.ToTask()
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var records []model.TaskRecord
	if err := r.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, record.ToTask())
	}
	return tasks, nil
}

// Update writes the given columns and reports how many rows matched.
func (r *TaskRepository) Update(ctx context.Context, id string, changes map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.TaskRecord{}).
		Where("id = ?", id).
		Updates(changes)

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TaskRecord{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

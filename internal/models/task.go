package model

// Task is the API representation of a stored task.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// TaskRecord mirrors a row of the tasks table. Completed is kept as the
// stored 0/1 integer and only becomes a bool through ToTask.
type TaskRecord struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title;not null"`
	Description *string `gorm:"column:description"`
	Completed   int     `gorm:"column:completed"`
}

func (TaskRecord) TableName() string {
	return "tasks"
}

func (r TaskRecord) ToTask() Task {
	return Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed != 0,
	}
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

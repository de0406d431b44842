package dto

import model "task-list.com/task-list/internal/models"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskRequest carries a partial update. A field whose key was absent
// from the request body keeps its stored value.
type UpdateTaskRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
}

// Changes returns the column/value pairs for the keys that were supplied.
// A null description clears the stored one.
func (r UpdateTaskRequest) Changes() map[string]interface{} {
	changes := make(map[string]interface{}, 3)
	if r.Title.Set && r.Title.Value != nil {
		changes["title"] = *r.Title.Value
	}
	if r.Description.Set {
		if r.Description.Value == nil {
			changes["description"] = nil
		} else {
			changes["description"] = *r.Description.Value
		}
	}
	if r.Completed.Set {
		changes["completed"] = model.BoolToInt(r.Completed.Value != nil && *r.Completed.Value)
	}
	return changes
}

func (r UpdateTaskRequest) IsEmpty() bool {
	return !r.Title.Set && !r.Description.Set && !r.Completed.Set
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
}

package model

import "testing"

func TestTaskRecord_ToTaskCoercesCompleted(t *testing.T) {
	desc := "two litres"
	cases := []struct {
		stored int
		want   bool
	}{
		{0, false},
		{1, true},
		{7, true},
	}

	for _, tc := range cases {
		task := TaskRecord{ID: 4, Title: "Buy milk", Description: &desc, Completed: tc.stored}.ToTask()
		if task.Completed != tc.want {
			t.Errorf("completed=%d: expected %v, got %v", tc.stored, tc.want, task.Completed)
		}
		if task.ID != 4 || task.Title != "Buy milk" || task.Description != &desc {
			t.Errorf("unexpected task fields: %+v", task)
		}
	}
}

func TestBoolToInt(t *testing.T) {
	if BoolToInt(true) != 1 || BoolToInt(false) != 0 {
		t.Error("expected true=1 and false=0")
	}
}

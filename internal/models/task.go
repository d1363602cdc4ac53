package models

import (
	"strings"
	"time"
)

// Task represents a single to-do item.
// Tasks are serialized as one blob per collection, never individually.
type Task struct {
	ID        string     `yaml:"id"`
	Text      string     `yaml:"text"`
	Completed bool       `yaml:"completed"`
	CreatedAt time.Time  `yaml:"createdAt"`
	UpdatedAt *time.Time `yaml:"updatedAt,omitempty"`
}

// NewTask creates an active task with the given id and text.
func NewTask(id, text string, now time.Time) *Task {
	return &Task{
		ID:        id,
		Text:      text,
		Completed: false,
		CreatedAt: now,
	}
}

// Touch records a mutation time on the task.
func (t *Task) Touch(now time.Time) {
	t.UpdatedAt = &now
}

// MatchesSearch reports whether the task text contains term,
// case-insensitively. An empty term matches every task.
func (t *Task) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Text), strings.ToLower(term))
}

// Clone returns a copy of the task so callers cannot mutate store state.
func (t *Task) Clone() *Task {
	c := *t
	if t.UpdatedAt != nil {
		u := *t.UpdatedAt
		c.UpdatedAt = &u
	}
	return &c
}

package models

import "fmt"

// FilterStatus narrows which tasks a read returns.
type FilterStatus string

const (
	FilterAll       FilterStatus = "all"
	FilterActive    FilterStatus = "active"
	FilterCompleted FilterStatus = "completed"
)

// ParseFilter validates a user-supplied filter string.
// An empty string defaults to FilterAll.
func ParseFilter(s string) (FilterStatus, error) {
	switch FilterStatus(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("invalid filter %q: must be 'all', 'active', or 'completed'", s)
	}
}

// Matches reports whether a task's completion state passes the filter.
func (f FilterStatus) Matches(t *Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next cycles all → active → completed → all. Used by the TUI filter key.
func (f FilterStatus) Next() FilterStatus {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

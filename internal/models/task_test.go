package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesSearch(t *testing.T) {
	task := NewTask("1", "Buy Milk", time.Now())

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"milk", true},
		{"MILK", true},
		{"uy m", true},
		{"bread", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, task.MatchesSearch(tc.term), "term %q", tc.term)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	now := time.Now()
	task := NewTask("1", "Buy milk", now)
	task.Touch(now.Add(time.Minute))

	c := task.Clone()
	c.Text = "changed"
	*c.UpdatedAt = now.Add(time.Hour)

	assert.Equal(t, "Buy milk", task.Text)
	assert.True(t, task.UpdatedAt.Equal(now.Add(time.Minute)))
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]FilterStatus{
		"":          FilterAll,
		"all":       FilterAll,
		"active":    FilterActive,
		"completed": FilterCompleted,
	} {
		got, err := ParseFilter(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFilter("done")
	assert.Error(t, err)
}

func TestFilterCycle(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidylist-io/tidylist/internal/models"
	"github.com/tidylist-io/tidylist/internal/slot"
	"github.com/tidylist-io/tidylist/internal/store"
)

func TestRenderNotice_PlainOutput(t *testing.T) {
	tests := []struct {
		level models.NoticeLevel
		want  string
	}{
		{models.NoticeSuccess, "✓ done"},
		{models.NoticeWarning, "! done"},
		{models.NoticeError, "✗ done"},
		{models.NoticeInfo, "· done"},
	}

	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			got := renderNotice(models.Notice{Level: tc.level, Message: "done"}, false)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenderTaskLine_Plain(t *testing.T) {
	active := &models.Task{ID: "abcdef12-3456", Text: "Buy milk"}
	done := &models.Task{ID: "1", Text: "Install tidylist", Completed: true}

	assert.Equal(t, "[ ] abcdef12  Buy milk", renderTaskLine(active, false))
	assert.Equal(t, "[x] 1  Install tidylist", renderTaskLine(done, false))
}

func TestResolveTaskID(t *testing.T) {
	s, err := store.Open(slot.NewMemory())
	require.NoError(t, err)

	// Seeded ids are "1".."4"; exact match works below the prefix
	// minimum.
	id, err := resolveTaskID(s, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	created, err := s.Create("Buy milk")
	require.NoError(t, err)

	id, err = resolveTaskID(s, created.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	_, err = resolveTaskID(s, "nope")
	var nf *store.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

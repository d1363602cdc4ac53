package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tidylist-io/tidylist/internal/models"
)

var noticeStyles = map[models.NoticeLevel]lipgloss.Style{
	models.NoticeSuccess: styleSuccess,
	models.NoticeWarning: styleWarning,
	models.NoticeError:   styleError,
	models.NoticeInfo:    styleInfo,
}

var noticeMarks = map[models.NoticeLevel]string{
	models.NoticeSuccess: "✓",
	models.NoticeWarning: "!",
	models.NoticeError:   "✗",
	models.NoticeInfo:    "·",
}

// renderNotice formats a notice for terminal output. Styling is skipped
// when styled is false so piped output stays plain.
func renderNotice(n models.Notice, styled bool) string {
	line := fmt.Sprintf("%s %s", noticeMarks[n.Level], n.Message)
	if !styled {
		return line
	}
	return noticeStyles[n.Level].Render(line)
}

func printNotice(level models.NoticeLevel, format string, args ...interface{}) {
	n := models.Notice{Level: level, Message: fmt.Sprintf(format, args...)}
	fmt.Println(renderNotice(n, stdoutIsTerminal()))
}

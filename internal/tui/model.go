package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tidylist-io/tidylist/internal/models"
	"github.com/tidylist-io/tidylist/internal/store"
)

// noticeTimeout is how long a notice stays on screen.
const noticeTimeout = 3 * time.Second

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeSearch
)

// Model is the bubbletea model for the interactive task list.
type Model struct {
	store  *store.Store
	reopen func() (*store.Store, error)

	filter models.FilterStatus
	search string
	tasks  []*models.Task
	cursor int

	mode      mode
	input     textinput.Model
	editingID string

	notice    *models.Notice
	noticeSeq int

	width  int
	height int
}

// NewModel creates the TUI model over an opened store.
func NewModel(s *store.Store, reopen func() (*store.Store, error), filter models.FilterStatus) Model {
	input := textinput.New()
	input.CharLimit = 200

	m := Model{
		store:  s,
		reopen: reopen,
		filter: filter,
		input:  input,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads the visible tasks and clamps the cursor.
func (m *Model) refresh() {
	m.tasks = m.store.List(m.filter, m.search)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setNotice shows a notice and schedules its expiry.
func (m *Model) setNotice(level models.NoticeLevel, format string, args ...interface{}) tea.Cmd {
	m.notice = &models.Notice{Level: level, Message: fmt.Sprintf(format, args...)}
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{Seq: seq}
	})
}

// noticeForErr maps store errors to notice levels: rejected input is a
// warning, a missing id is an error, a failed slot write is a warning
// because the in-memory change still applied.
func (m *Model) noticeForErr(err error) tea.Cmd {
	var verr *store.ValidationError
	var nf *store.NotFoundError
	var perr *store.PersistenceError

	switch {
	case errors.As(err, &verr):
		return m.setNotice(models.NoticeWarning, "%s", verr.Error())
	case errors.As(err, &nf):
		return m.setNotice(models.NoticeError, "%s", nf.Error())
	case errors.As(err, &perr):
		return m.setNotice(models.NoticeWarning, "%s", perr.Error())
	default:
		return m.setNotice(models.NoticeError, "%s", err.Error())
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SlotChangedMsg:
		reopened, err := m.reopen()
		if err != nil {
			return m, m.noticeForErr(err)
		}
		m.store = reopened
		m.refresh()
		return m, m.setNotice(models.NoticeInfo, "Task list reloaded from disk")

	case clearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeList {
			return m.updateList(msg)
		}
		return m.updateInput(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, listKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, listKeys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, listKeys.Add):
		m.mode = modeAdd
		m.input.Placeholder = "New task"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, listKeys.Edit):
		if t := m.selected(); t != nil {
			m.mode = modeEdit
			m.editingID = t.ID
			m.input.Placeholder = ""
			m.input.SetValue(t.Text)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, listKeys.Search):
		m.mode = modeSearch
		m.input.Placeholder = "Search"
		m.input.SetValue(m.search)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, listKeys.Toggle):
		if t := m.selected(); t != nil {
			toggled, err := m.store.Toggle(t.ID)
			m.refresh()
			if err != nil {
				return m, m.noticeForErr(err)
			}
			if toggled.Completed {
				return m, m.setNotice(models.NoticeSuccess, "Completed %q", toggled.Text)
			}
			return m, m.setNotice(models.NoticeInfo, "Reactivated %q", toggled.Text)
		}

	case key.Matches(msg, listKeys.Delete):
		if t := m.selected(); t != nil {
			err := m.store.Delete(t.ID)
			m.refresh()
			if err != nil {
				return m, m.noticeForErr(err)
			}
			return m, m.setNotice(models.NoticeSuccess, "Deleted %q", t.Text)
		}

	case key.Matches(msg, listKeys.Filter):
		m.filter = m.filter.Next()
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, listKeys.Clear):
		removed, err := m.store.ClearCompleted()
		m.refresh()
		if err != nil {
			return m, m.noticeForErr(err)
		}
		if removed == 0 {
			return m, m.setNotice(models.NoticeInfo, "No completed tasks to clear")
		}
		return m, m.setNotice(models.NoticeSuccess, "Cleared %d completed", removed)

	case key.Matches(msg, listKeys.CompleteAll):
		changed, err := m.store.MarkAllComplete()
		m.refresh()
		if err != nil {
			return m, m.noticeForErr(err)
		}
		if changed == 0 {
			return m, m.setNotice(models.NoticeInfo, "No active tasks to complete")
		}
		return m, m.setNotice(models.NoticeSuccess, "Completed %d", changed)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, inputKeys.Cancel):
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case key.Matches(msg, inputKeys.Confirm):
		value := m.input.Value()
		mode := m.mode
		m.mode = modeList
		m.input.Blur()

		switch mode {
		case modeAdd:
			created, err := m.store.Create(value)
			m.refresh()
			if err != nil {
				return m, m.noticeForErr(err)
			}
			m.cursor = 0
			return m, m.setNotice(models.NoticeSuccess, "Added %q", created.Text)

		case modeEdit:
			edited, err := m.store.Edit(m.editingID, value)
			m.refresh()
			if err != nil {
				return m, m.noticeForErr(err)
			}
			return m, m.setNotice(models.NoticeSuccess, "Updated %q", edited.Text)

		case modeSearch:
			m.search = strings.TrimSpace(value)
			m.cursor = 0
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Live search: narrow the list while typing.
	if m.mode == modeSearch {
		m.search = strings.TrimSpace(m.input.Value())
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

// selected returns the task under the cursor, or nil.
func (m *Model) selected() *models.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewTasks())
	b.WriteString("\n")

	if m.mode != modeList {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.viewNotice())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())

	return b.String()
}

func (m Model) viewHeader() string {
	tabs := make([]string, 0, 3)
	for _, f := range []models.FilterStatus{models.FilterAll, models.FilterActive, models.FilterCompleted} {
		style := inactiveTabStyle
		if f == m.filter {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(string(f)))
	}

	header := headerStyle.Render("tidylist") + "  " + strings.Join(tabs, " · ")
	if m.search != "" {
		header += "  " + inactiveTabStyle.Render(fmt.Sprintf("search: %q", m.search))
	}
	return header
}

func (m Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return emptyListStyle.Render("No tasks here. Press a to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range m.tasks {
		box := "[ ]"
		style := taskActiveStyle
		if t.Completed {
			box = "[x]"
			style = taskDoneStyle
		}

		line := fmt.Sprintf("%s %s", box, style.Render(t.Text))
		if i == m.cursor {
			line = selectedItemStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewNotice() string {
	if m.notice == nil {
		return ""
	}

	style := noticeInfoStyle
	switch m.notice.Level {
	case models.NoticeSuccess:
		style = noticeSuccessStyle
	case models.NoticeWarning:
		style = noticeWarningStyle
	case models.NoticeError:
		style = noticeErrorStyle
	}
	return style.Render(m.notice.Message)
}

func (m Model) viewStatusBar() string {
	st := m.store.Statistics()
	left := fmt.Sprintf(" %d total · %d active · %d completed ", st.Total, st.Active, st.Completed)
	right := " a add · e edit · space toggle · d delete · f filter · / search · q quit "

	bar := left
	if gap := m.width - lipgloss.Width(left) - lipgloss.Width(right); gap > 0 {
		bar += strings.Repeat(" ", gap) + right
	}
	return statusBarStyle.Render(bar)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tidylist-io/tidylist/internal/models"
	"github.com/tidylist-io/tidylist/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runList,
}

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Aliases: []string{"done"},
	Short:   "Toggle a task between active and completed",
	Args:    cobra.ExactArgs(1),
	RunE:    runToggle,
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace a task's text",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEdit,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var (
	listFilter string
	listSearch string
)

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "filter by status: all, active, or completed")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "show only tasks containing this text")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	task, err := s.Create(strings.Join(args, " "))
	if task != nil {
		printNotice(models.NoticeSuccess, "Added %q (%s)", task.Text, shortID(task.ID))
	}
	if err != nil {
		return reportErr(err)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	s, settings, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	if listFilter == "" {
		listFilter = settings.DefaultFilter
	}
	filter, err := models.ParseFilter(listFilter)
	if err != nil {
		return reportErr(err)
	}

	tasks := s.List(filter, listSearch)
	if len(tasks) == 0 {
		printNotice(models.NoticeInfo, "No tasks. Run 'tidylist add <text>' to create one.")
		return nil
	}

	styled := stdoutIsTerminal()
	for _, t := range tasks {
		fmt.Println(renderTaskLine(t, styled))
	}

	st := s.Statistics()
	summary := fmt.Sprintf("%d total · %d active · %d completed", st.Total, st.Active, st.Completed)
	if styled {
		summary = styleHint.Render(summary)
	}
	fmt.Println(summary)
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	id, err := resolveTaskID(s, args[0])
	if err != nil {
		return reportErr(err)
	}

	task, err := s.Toggle(id)
	if task != nil {
		if task.Completed {
			printNotice(models.NoticeSuccess, "Completed %q", task.Text)
		} else {
			printNotice(models.NoticeInfo, "Reactivated %q", task.Text)
		}
	}
	if err != nil {
		return reportErr(err)
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	id, err := resolveTaskID(s, args[0])
	if err != nil {
		return reportErr(err)
	}

	task, err := s.Edit(id, strings.Join(args[1:], " "))
	if task != nil {
		printNotice(models.NoticeSuccess, "Updated %q", task.Text)
	}
	if err != nil {
		return reportErr(err)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	id, err := resolveTaskID(s, args[0])
	if err != nil {
		return reportErr(err)
	}

	if err := s.Delete(id); err != nil {
		return reportErr(err)
	}
	printNotice(models.NoticeSuccess, "Deleted task %s", shortID(id))
	return nil
}

// resolveTaskID expands an exact id or unambiguous id prefix (min 4
// chars) to the full task id.
func resolveTaskID(s *store.Store, idOrPrefix string) (string, error) {
	tasks := s.List(models.FilterAll, "")

	for _, t := range tasks {
		if t.ID == idOrPrefix {
			return t.ID, nil
		}
	}

	if len(idOrPrefix) >= 4 {
		var matches []string
		for _, t := range tasks {
			if strings.HasPrefix(t.ID, idOrPrefix) {
				matches = append(matches, t.ID)
			}
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
		if len(matches) > 1 {
			return "", fmt.Errorf("ambiguous task id prefix %s (matches %d tasks)", idOrPrefix, len(matches))
		}
	}

	return "", &store.NotFoundError{ID: idOrPrefix}
}

// renderTaskLine formats one task for the list output.
func renderTaskLine(t *models.Task, styled bool) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	id := shortID(t.ID)

	if !styled {
		return fmt.Sprintf("%s %s  %s", box, id, t.Text)
	}

	text := taskActiveStyle.Render(t.Text)
	if t.Completed {
		text = taskDoneStyle.Render(t.Text)
	}
	return fmt.Sprintf("%s %s  %s", box, taskIDStyle.Render(id), text)
}

// shortID abbreviates UUIDs for display; seeded single-digit ids pass
// through unchanged.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

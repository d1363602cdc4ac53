package cli

import (
	"github.com/spf13/cobra"

	"github.com/tidylist-io/tidylist/internal/models"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	RunE:  runClear,
}

var completeAllCmd = &cobra.Command{
	Use:   "complete-all",
	Short: "Mark every active task as completed",
	RunE:  runCompleteAll,
}

func runClear(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	removed, err := s.ClearCompleted()
	if err != nil {
		return reportErr(err)
	}

	if removed == 0 {
		printNotice(models.NoticeInfo, "No completed tasks to clear.")
		return nil
	}
	printNotice(models.NoticeSuccess, "Cleared %d completed %s", removed, plural(removed, "task"))
	return nil
}

func runCompleteAll(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	changed, err := s.MarkAllComplete()
	if err != nil {
		return reportErr(err)
	}

	if changed == 0 {
		printNotice(models.NoticeInfo, "No active tasks to complete.")
		return nil
	}
	printNotice(models.NoticeSuccess, "Completed %d %s", changed, plural(changed, "task"))
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

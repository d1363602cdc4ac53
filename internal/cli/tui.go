package cli

import (
	"github.com/spf13/cobra"

	"github.com/tidylist-io/tidylist/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, settings, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	slotPath, err := slotFilePath()
	if err != nil {
		return reportErr(err)
	}

	return tui.Run(s, slotPath, settings.DefaultFilter)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return reportErr(err)
	}

	st := s.Statistics()
	styled := stdoutIsTerminal()

	rows := []struct {
		label string
		count int
	}{
		{"Total", st.Total},
		{"Active", st.Active},
		{"Completed", st.Completed},
	}
	for _, r := range rows {
		if styled {
			fmt.Printf("  %s  %s\n", styleLabel.Render(fmt.Sprintf("%-9s", r.label)), styleValue.Render(fmt.Sprintf("%d", r.count)))
		} else {
			fmt.Printf("  %-9s  %d\n", r.label, r.count)
		}
	}
	return nil
}

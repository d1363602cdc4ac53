package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Filter tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)
)

// Task list styles.
var (
	taskActiveStyle = lipgloss.NewStyle().Foreground(colorWhite)
	taskDoneStyle   = lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	emptyListStyle = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)

// Notice styles, one per level.
var (
	noticeSuccessStyle = lipgloss.NewStyle().Foreground(colorGreen)
	noticeWarningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	noticeErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	noticeInfoStyle    = lipgloss.NewStyle().Foreground(colorCyan)
)

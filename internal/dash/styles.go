package dash

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/prdeck/prdeck/models"
)

var (
	green    = lipgloss.Color("#22C55E")
	yellow   = lipgloss.Color("#F59E0B")
	red      = lipgloss.Color("#EF4444")
	magenta  = lipgloss.Color("#D946EF")
	blue     = lipgloss.Color("#38BDF8")
	slate    = lipgloss.Color("#94A3B8")
	slateDim = lipgloss.Color("#64748B")
	ink      = lipgloss.Color("#E5E7EB")
	bgDark   = lipgloss.Color("#0B1220")
	line     = lipgloss.Color("#1F2937")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ink).
			Background(bgDark).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#0F172A"))

	repoStyle = lipgloss.NewStyle().Foreground(slate)
	dimStyle  = lipgloss.NewStyle().Foreground(slateDim)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(slate).
			Background(bgDark).
			Padding(0, 1)

	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ink)
	previewDimStyle   = lipgloss.NewStyle().Foreground(slateDim)
	previewPaneStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(line).
				Padding(0, 1)

	fileHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(blue)
	diffAddStyle    = lipgloss.NewStyle().Foreground(green)
	diffDelStyle    = lipgloss.NewStyle().Foreground(red)
	diffHunkStyle   = lipgloss.NewStyle().Foreground(magenta)

	graphLaneStyle = lipgloss.NewStyle().Foreground(yellow)
	shaStyle       = lipgloss.NewStyle().Foreground(blue)

	cleanStyle   = lipgloss.NewStyle().Foreground(green)
	blockedStyle = lipgloss.NewStyle().Foreground(red)
	pendingStyle = lipgloss.NewStyle().Foreground(yellow)
	draftStyle   = lipgloss.NewStyle().Foreground(ink)
	unknownStyle = lipgloss.NewStyle().Foreground(magenta)
)

// mergeStateStyle colours a list row by the platform's merge verdict.
func mergeStateStyle(state models.MergeState) lipgloss.Style {
	switch state {
	case models.MergeStateClean:
		return cleanStyle
	case models.MergeStateBlocked:
		return blockedStyle
	case models.MergeStateBehind, models.MergeStateDirty,
		models.MergeStateHasHooks, models.MergeStateUnstable:
		return pendingStyle
	case models.MergeStateDraft:
		return draftStyle
	default:
		return unknownStyle
	}
}

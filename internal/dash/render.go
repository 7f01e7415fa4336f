package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/prdeck/prdeck/internal/stats"
)

// renderList draws the pull request rows, highlighting the cursor and
// colouring titles by merge verdict.
func renderList(c *Controller, width, height int) string {
	prs := c.WorkingSet()
	if len(prs) == 0 {
		return dimStyle.Render("no open pull requests")
	}

	// Keep the cursor visible on long lists.
	top := 0
	if c.Cursor() >= height {
		top = c.Cursor() - height + 1
	}

	var b strings.Builder
	for i := top; i < len(prs) && i-top < height; i++ {
		pr := prs[i]
		marker := "  "
		if i == c.Cursor() {
			marker = "> "
		}
		row := marker +
			repoStyle.Render(fmt.Sprintf("%s#%d", pr.Slug(), pr.Number)) + " " +
			mergeStateStyle(pr.MergeState).Render(truncate(pr.Title, width-28))
		if len(pr.Reviewers) > 0 {
			row += " " + dimStyle.Render("["+strings.Join(pr.Reviewers, ", ")+"]")
		}
		if i == c.Cursor() {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderPreview draws the open pane's cached content, clipped to the
// viewport by the scroll offset.
func renderPreview(c *Controller, width, height int) string {
	content, ok := c.PreviewContent()
	if !ok {
		content = dimStyle.Render("loading " + c.Preview().String() + "...")
	}
	body := clipLines(content, c.ScrollOffset(), height)
	return previewPaneStyle.Width(width - 2).Height(height).Render(body)
}

// renderContributions draws the calendar as one column per week, cells
// coloured with the platform's own palette, plus to-date totals.
func renderContributions(c *Controller, today func() stats.Summary) string {
	cal, login := c.Calendar()
	if cal == nil {
		return dimStyle.Render("loading contributions...")
	}

	var rows [7]strings.Builder
	for _, week := range cal.Weeks {
		for d := 0; d < 7; d++ {
			if d < len(week.Days) {
				day := week.Days[d]
				cell := "■"
				if day.Color != "" {
					cell = lipgloss.NewStyle().Foreground(lipgloss.Color(day.Color)).Render("■")
				}
				rows[d].WriteString(cell)
			} else {
				rows[d].WriteString(" ")
			}
		}
	}

	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(fmt.Sprintf("%s: %d contributions", login, cal.Total)))
	b.WriteString("\n")
	for d := range rows {
		b.WriteString(rows[d].String())
		b.WriteString("\n")
	}

	s := today()
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"year %d (%.1f/day)  month %d (%.1f/day)  week %d (%.1f/day)",
		s.Year.Total, s.Year.Average(),
		s.Month.Total, s.Month.Average(),
		s.Week.Total, s.Week.Average(),
	)))
	return b.String()
}

// renderStatusBar shows the current status message, falling back to the
// key help line.
func renderStatusBar(c *Controller, keys keyMap, width int) string {
	text := c.CurrentStatus().Text
	if text == "" {
		text = keys.helpLine()
	}
	return statusBarStyle.Width(width).Render(truncate(text, width-2))
}

func renderHeader(c *Controller, width int) string {
	targets := make([]string, 0, len(c.Targets()))
	for _, t := range c.Targets() {
		targets = append(targets, t.String())
	}
	return titleStyle.Render("prdeck") + "  " +
		dimStyle.Render(truncate(strings.Join(targets, "  "), width-10))
}

// clipLines returns height lines of s starting at offset, saturating at
// the last line.
func clipLines(s string, offset, height int) string {
	lines := strings.Split(s, "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func truncate(s string, w int) string {
	if w <= 0 {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

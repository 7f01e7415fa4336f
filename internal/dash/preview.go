package dash

import (
	"fmt"
	"strings"

	"github.com/prdeck/prdeck/internal/graph"
	"github.com/prdeck/prdeck/models"
)

// renderBody formats the description pane: title, URL, then the body
// text (or a placeholder for description-less PRs).
func renderBody(pr models.PullRequest, body string) string {
	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(fmt.Sprintf("%s#%d %s", pr.Slug(), pr.Number, pr.Title)))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render(pr.URL))
	b.WriteString("\n\n")
	if strings.TrimSpace(body) == "" {
		b.WriteString(previewDimStyle.Render("(no description)"))
	} else {
		b.WriteString(body)
	}
	return b.String()
}

// renderFiles formats the diff pane: one header per file with its line
// counts, followed by the patch with added and removed lines coloured.
func renderFiles(files []models.FileDiff) string {
	if len(files) == 0 {
		return previewDimStyle.Render("(no changed files)")
	}
	var b strings.Builder
	for i, f := range files {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("=== %s (+%d, -%d) ===", f.Filename, f.Additions, f.Deletions)
		b.WriteString(fileHeaderStyle.Render(header))
		b.WriteString("\n")
		for _, line := range strings.Split(f.Patch, "\n") {
			switch {
			case strings.HasPrefix(line, "+"):
				b.WriteString(diffAddStyle.Render(line))
			case strings.HasPrefix(line, "-"):
				b.WriteString(diffDelStyle.Render(line))
			case strings.HasPrefix(line, "@@"):
				b.WriteString(diffHunkStyle.Render(line))
			default:
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderCommits formats the history pane using the lane graph.
func renderCommits(commits []models.Commit) string {
	rows := graph.Build(commits)
	if len(rows) == 0 {
		return previewDimStyle.Render("(no commits)")
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(graphLaneStyle.Render(r.Prefix))
		b.WriteString(shaStyle.Render(r.SHA))
		b.WriteString(" ")
		b.WriteString(r.Summary)
		if r.Author != "" {
			b.WriteString(previewDimStyle.Render(" (" + r.Author))
			if r.Date != "" {
				b.WriteString(previewDimStyle.Render(", " + r.Date))
			}
			b.WriteString(previewDimStyle.Render(")"))
		}
	}
	return b.String()
}

// Package graph turns a pull request's commit history into display rows
// with an ASCII branch-lane prefix, in the style of `git log --graph`.
//
// The layout is a single-pass heuristic over the newest-first commit
// list: each commit advances its lane to the front, sibling branches are
// drawn as parallel rails. It makes no claim of being a minimal or
// planar layout.
package graph

import (
	"strings"

	"github.com/prdeck/prdeck/models"
)

// Row is one rendered line of the history graph. Prefix holds the lane
// markers ("* " for the commit's lane, "| " for every other open lane).
type Row struct {
	Prefix  string
	SHA     string
	Summary string
	Author  string
	Date    string
}

// Build lays out commits (newest first) into one Row per commit, in
// input order. Lane bookkeeping:
//
//   - a commit already tracked in the active lane list is swapped to
//     lane 0; a new commit with parents opens lane 0
//   - after emitting its row the commit's lane is consumed and each
//     parent is placed at successive lanes from 0, reusing a parent's
//     lane when it is already open
//   - lanes that converged on the same parent collapse (stable,
//     first occurrence wins)
//
// A commit with no parents that no lane connects to stays laneless, so a
// lone root commit renders with an empty prefix. Ties in lane order
// follow the parent order given by the provider.
func Build(commits []models.Commit) []Row {
	rows := make([]Row, 0, len(commits))
	var active []string

	for _, c := range commits {
		onLane := false
		if i := indexOf(active, c.SHA); i >= 0 {
			active[0], active[i] = active[i], active[0]
			onLane = true
		} else if len(c.Parents) > 0 {
			active = insertAt(active, 0, c.SHA)
			onLane = true
		}

		rows = append(rows, Row{
			Prefix:  lanePrefix(len(active), onLane),
			SHA:     c.ShortSHA(),
			Summary: c.Summary,
			Author:  c.Author,
			Date:    dateLabel(c),
		})

		if onLane {
			active = active[1:]
		}
		for j, parent := range c.Parents {
			at := j
			if i := indexOf(active, parent); i >= 0 {
				active = append(active[:i], active[i+1:]...)
			}
			if at > len(active) {
				at = len(active)
			}
			active = insertAt(active, at, parent)
		}
		active = dedup(active)
	}
	return rows
}

// lanePrefix renders one marker per open lane. The commit itself sits on
// lane 0 unless it is laneless, in which case every lane is a rail.
func lanePrefix(lanes int, onLane bool) string {
	if lanes == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < lanes; i++ {
		if i == 0 && onLane {
			b.WriteString("* ")
		} else {
			b.WriteString("| ")
		}
	}
	return b.String()
}

func dateLabel(c models.Commit) string {
	if c.Date.IsZero() {
		return ""
	}
	return c.Date.Format("2006-01-02")
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func insertAt(s []string, i int, v string) []string {
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func dedup(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := s[:0]
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

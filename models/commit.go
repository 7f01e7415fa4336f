package models

import "time"

// Commit is one entry of a pull request's history, newest first as
// returned by Provider.PRCommits. Parents is empty for a root commit and
// has more than one entry for a merge commit.
type Commit struct {
	SHA     string    `json:"sha"`
	Parents []string  `json:"parents"`
	Summary string    `json:"summary"`
	Author  string    `json:"author,omitempty"`
	Date    time.Time `json:"date,omitempty"`
}

// ShortSHA returns the abbreviated commit hash used in display rows.
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// FileDiff is one changed file of a pull request. Patch is the unified
// diff text; it is empty for binary or oversized files.
type FileDiff struct {
	Filename  string `json:"filename"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Patch     string `json:"patch,omitempty"`
}

package models

import "time"

// MergeState is the hosting platform's assessment of whether a pull request
// can be merged cleanly right now. Values mirror the GitHub GraphQL
// mergeStateStatus enum; the GitLab provider maps detailed_merge_status
// onto the same set.
type MergeState string

const (
	MergeStateBehind   MergeState = "BEHIND"
	MergeStateBlocked  MergeState = "BLOCKED"
	MergeStateClean    MergeState = "CLEAN"
	MergeStateDirty    MergeState = "DIRTY"
	MergeStateDraft    MergeState = "DRAFT"
	MergeStateHasHooks MergeState = "HAS_HOOKS"
	MergeStateUnknown  MergeState = "UNKNOWN"
	MergeStateUnstable MergeState = "UNSTABLE"
)

// ReviewDecision is the aggregate outcome of requested reviews on a PR.
// Empty when the repository has no review requirements.
type ReviewDecision string

const (
	ReviewApproved         ReviewDecision = "APPROVED"
	ReviewChangesRequested ReviewDecision = "CHANGES_REQUESTED"
	ReviewRequired         ReviewDecision = "REVIEW_REQUIRED"
)

// PullRequest is one open pull request as fetched from a provider.
// Records are immutable once fetched and replaced wholesale on reload;
// ID is stable across reloads and keys the preview cache.
type PullRequest struct {
	ID             string         `json:"id"`
	Number         int            `json:"number"`
	Owner          string         `json:"owner"`
	Name           string         `json:"name"`
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	CreatedAt      time.Time      `json:"created_at"`
	MergeState     MergeState     `json:"merge_state"`
	ReviewDecision ReviewDecision `json:"review_decision,omitempty"`
	Reviewers      []string       `json:"reviewers,omitempty"`
}

// Slug returns the owner/name coordinates of the PR's repository.
func (p PullRequest) Slug() string {
	return p.Owner + "/" + p.Name
}

// SameRepo reports whether the PR belongs to the given repository.
func (p PullRequest) SameRepo(owner, name string) bool {
	return p.Owner == owner && p.Name == name
}

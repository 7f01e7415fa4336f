package provider

import (
	"context"
	"fmt"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/prdeck/prdeck/models"
)

// GitLabProvider implements Provider for GitLab (cloud and self-hosted).
// Merge requests are surfaced through the same pull request model;
// detailed_merge_status values map onto the shared merge states.
type GitLabProvider struct {
	client *gitlab.Client
	host   string
}

// NewGitLab creates a GitLabProvider for the given host and token.
func NewGitLab(host, token string) (*GitLabProvider, error) {
	opts := []gitlab.ClientOptionFunc{}
	if host != "" && host != "gitlab.com" {
		base := fmt.Sprintf("https://%s/api/v4/", host)
		opts = append(opts, gitlab.WithBaseURL(base))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating GitLab client: %w", err)
	}

	return &GitLabProvider{client: client, host: host}, nil
}

func (g *GitLabProvider) Name() string { return "gitlab" }

func (g *GitLabProvider) Viewer(ctx context.Context) (string, error) {
	user, _, err := g.client.Users.CurrentUser(gitlab.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("resolving current user: %w", err)
	}
	return user.Username, nil
}

func (g *GitLabProvider) AccountPRs(ctx context.Context, owner string) ([]models.PullRequest, error) {
	state := "opened"
	scope := "all"
	mrs, _, err := g.client.MergeRequests.ListMergeRequests(&gitlab.ListMergeRequestsOptions{
		State:          &state,
		Scope:          &scope,
		AuthorUsername: &owner,
		ListOptions:    gitlab.ListOptions{PerPage: 100},
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing merge requests for %s: %w", owner, err)
	}
	return g.convertMRs(ctx, mrs)
}

func (g *GitLabProvider) RepoPRs(ctx context.Context, owner, name string) ([]models.PullRequest, error) {
	state := "opened"
	pid := owner + "/" + name
	mrs, _, err := g.client.MergeRequests.ListProjectMergeRequests(pid, &gitlab.ListProjectMergeRequestsOptions{
		State:       &state,
		ListOptions: gitlab.ListOptions{PerPage: 100},
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing merge requests for %s: %w", pid, err)
	}
	return g.convertMRs(ctx, mrs)
}

func (g *GitLabProvider) PRBody(ctx context.Context, owner, name string, number int) (string, error) {
	pid := owner + "/" + name
	mr, _, err := g.client.MergeRequests.GetMergeRequest(pid, int64(number), nil, gitlab.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("fetching %s!%d: %w", pid, number, err)
	}
	return mr.Description, nil
}

func (g *GitLabProvider) PRFiles(ctx context.Context, owner, name string, number int) ([]models.FileDiff, error) {
	pid := owner + "/" + name
	diffs, _, err := g.client.MergeRequests.ListMergeRequestDiffs(pid, int64(number), &gitlab.ListMergeRequestDiffsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing diffs of %s!%d: %w", pid, number, err)
	}

	files := make([]models.FileDiff, 0, len(diffs))
	for _, d := range diffs {
		adds, dels := countDiffLines(d.Diff)
		files = append(files, models.FileDiff{
			Filename:  d.NewPath,
			Additions: adds,
			Deletions: dels,
			Patch:     d.Diff,
		})
	}
	return files, nil
}

func (g *GitLabProvider) PRCommits(ctx context.Context, owner, name string, number int) ([]models.Commit, error) {
	pid := owner + "/" + name
	glCommits, _, err := g.client.MergeRequests.GetMergeRequestCommits(pid, int64(number), &gitlab.GetMergeRequestCommitsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100},
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing commits of %s!%d: %w", pid, number, err)
	}

	// Returned newest first already.
	commits := make([]models.Commit, 0, len(glCommits))
	for _, c := range glCommits {
		commit := models.Commit{
			SHA:     c.ID,
			Parents: c.ParentIDs,
			Summary: c.Title,
			Author:  c.AuthorName,
		}
		if c.AuthoredDate != nil {
			commit.Date = *c.AuthoredDate
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// ContributionCalendar is not part of the GitLab API surface this client
// targets; callers degrade to a status message.
func (g *GitLabProvider) ContributionCalendar(ctx context.Context, login string) (*models.ContributionCalendar, error) {
	return nil, fmt.Errorf("contribution calendar for %s: %w", login, ErrUnsupported)
}

func (g *GitLabProvider) MergePR(ctx context.Context, pr models.PullRequest) error {
	pid := pr.Slug()
	_, _, err := g.client.MergeRequests.AcceptMergeRequest(pid, int64(pr.Number), nil, gitlab.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("merging %s!%d: %w", pid, pr.Number, err)
	}
	return nil
}

func (g *GitLabProvider) ApprovePR(ctx context.Context, pr models.PullRequest) error {
	pid := pr.Slug()
	_, _, err := g.client.MergeRequestApprovals.ApproveMergeRequest(pid, int64(pr.Number), nil, gitlab.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("approving %s!%d: %w", pid, pr.Number, err)
	}
	return nil
}

func (g *GitLabProvider) AccountIssues(ctx context.Context, owner string) ([]models.Issue, error) {
	state := "opened"
	scope := "all"
	issues, _, err := g.client.Issues.ListIssues(&gitlab.ListIssuesOptions{
		State:          &state,
		Scope:          &scope,
		AuthorUsername: &owner,
		ListOptions:    gitlab.ListOptions{PerPage: 100},
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("listing issues for %s: %w", owner, err)
	}

	out := make([]models.Issue, 0, len(issues))
	for _, is := range issues {
		owner, name := splitProjectPath(is.WebURL)
		issue := models.Issue{
			Number: int(is.IID),
			Owner:  owner,
			Name:   name,
			Title:  is.Title,
			URL:    is.WebURL,
		}
		if is.CreatedAt != nil {
			issue.CreatedAt = *is.CreatedAt
		}
		out = append(out, issue)
	}
	return out, nil
}

func (g *GitLabProvider) convertMRs(ctx context.Context, mrs []*gitlab.BasicMergeRequest) ([]models.PullRequest, error) {
	prs := make([]models.PullRequest, 0, len(mrs))
	for _, mr := range mrs {
		owner, name := splitProjectPath(mr.WebURL)
		var reviewers []string
		for _, r := range mr.Reviewers {
			if r != nil {
				reviewers = append(reviewers, r.Username)
			}
		}
		pr := models.PullRequest{
			ID:         fmt.Sprintf("%d", mr.ID),
			Number:     int(mr.IID),
			Owner:      owner,
			Name:       name,
			Title:      mr.Title,
			URL:        mr.WebURL,
			MergeState: mergeStateFromGitLab(mr.DetailedMergeStatus, mr.Draft),
			Reviewers:  reviewers,
		}
		if mr.CreatedAt != nil {
			pr.CreatedAt = *mr.CreatedAt
		}
		prs = append(prs, pr)
	}
	return prs, nil
}

// mergeStateFromGitLab maps detailed_merge_status onto the shared enum.
func mergeStateFromGitLab(status string, draft bool) models.MergeState {
	if draft {
		return models.MergeStateDraft
	}
	switch status {
	case "mergeable":
		return models.MergeStateClean
	case "conflict", "broken_status":
		return models.MergeStateDirty
	case "draft_status":
		return models.MergeStateDraft
	case "ci_still_running", "ci_must_pass":
		return models.MergeStateUnstable
	case "blocked_status", "discussions_not_resolved", "not_approved",
		"merge_request_blocked", "policies_denied", "approvals_syncing":
		return models.MergeStateBlocked
	case "need_rebase":
		return models.MergeStateBehind
	default:
		return models.MergeStateUnknown
	}
}

// splitProjectPath extracts "owner", "name" from a GitLab web URL such as
// https://gitlab.com/owner/name/-/merge_requests/7. Nested groups keep
// the full namespace as the owner.
func splitProjectPath(webURL string) (string, string) {
	_, rest, ok := strings.Cut(webURL, "://")
	if !ok {
		return "", ""
	}
	parts := strings.Split(rest, "/")
	// parts[0] is the host; the project path ends at the "-" marker.
	for i, p := range parts {
		if p == "-" && i >= 3 {
			ns := strings.Join(parts[1:i-1], "/")
			return ns, parts[i-1]
		}
	}
	if len(parts) >= 3 {
		return parts[1], parts[2]
	}
	return "", ""
}

func countDiffLines(patch string) (adds, dels int) {
	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			adds++
		case strings.HasPrefix(line, "-"):
			dels++
		}
	}
	return adds, dels
}

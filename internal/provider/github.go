package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	ghapi "github.com/cli/go-gh/v2/pkg/api"
	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/prdeck/prdeck/models"
)

// GitHubProvider implements Provider for GitHub and GitHub Enterprise.
// Listing, previews and mutations go through the GraphQL API, which
// exposes merge-state and review-decision fields the v3 API lacks; file
// and commit listings, notifications and code search use the REST API.
type GitHubProvider struct {
	gql  *ghapi.GraphQLClient
	rest *gogithub.Client
	host string
}

// NewGitHub creates a GitHubProvider for the given host and token.
func NewGitHub(host, token string) (*GitHubProvider, error) {
	if host == "" {
		host = "github.com"
	}

	gql, err := ghapi.NewGraphQLClient(ghapi.ClientOptions{Host: host, AuthToken: token})
	if err != nil {
		return nil, fmt.Errorf("creating GitHub GraphQL client: %w", err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	rest := gogithub.NewClient(oauth2.NewClient(context.Background(), ts))
	if host != "github.com" {
		base := fmt.Sprintf("https://%s/api/v3/", host)
		upload := fmt.Sprintf("https://%s/api/uploads/", host)
		rest, err = rest.WithEnterpriseURLs(base, upload)
		if err != nil {
			return nil, fmt.Errorf("configuring GitHub enterprise URLs: %w", err)
		}
	}

	return &GitHubProvider{gql: gql, rest: rest, host: host}, nil
}

func (g *GitHubProvider) Name() string { return "github" }

// prNode is the GraphQL shape shared by the account and repository
// pull request listings.
type prNode struct {
	ID               string
	Number           int
	Title            string
	URL              string
	CreatedAt        string
	MergeStateStatus string
	ReviewDecision   string
	ReviewRequests   struct {
		Nodes []struct {
			RequestedReviewer struct {
				Login string
				Name  string
			}
		}
	}
}

const prFields = `
	id
	number
	title
	url
	createdAt
	mergeStateStatus
	reviewDecision
	reviewRequests(first: 10) {
		nodes {
			requestedReviewer {
				... on User { login }
				... on Team { name }
			}
		}
	}`

const accountPRsQuery = `
query($login: String!) {
	repositoryOwner(login: $login) {
		repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: PUSHED_AT, direction: DESC}) {
			nodes {
				name
				pullRequests(first: 50, states: OPEN, orderBy: {field: CREATED_AT, direction: ASC}) {
					nodes {` + prFields + `}
				}
			}
		}
	}
}`

const repoPRsQuery = `
query($owner: String!, $name: String!) {
	repository(owner: $owner, name: $name) {
		pullRequests(first: 50, states: OPEN, orderBy: {field: CREATED_AT, direction: ASC}) {
			nodes {` + prFields + `}
		}
	}
}`

func (g *GitHubProvider) Viewer(ctx context.Context) (string, error) {
	var resp struct {
		Viewer struct {
			Login string
		}
	}
	if err := g.gql.DoWithContext(ctx, `query { viewer { login } }`, nil, &resp); err != nil {
		return "", fmt.Errorf("resolving viewer: %w", err)
	}
	return resp.Viewer.Login, nil
}

func (g *GitHubProvider) AccountPRs(ctx context.Context, owner string) ([]models.PullRequest, error) {
	var resp struct {
		RepositoryOwner struct {
			Repositories struct {
				Nodes []struct {
					Name         string
					PullRequests struct {
						Nodes []prNode
					}
				}
			}
		}
	}
	vars := map[string]interface{}{"login": owner}
	if err := g.gql.DoWithContext(ctx, accountPRsQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("listing pull requests for %s: %w", owner, err)
	}

	var prs []models.PullRequest
	for _, repo := range resp.RepositoryOwner.Repositories.Nodes {
		for _, n := range repo.PullRequests.Nodes {
			prs = append(prs, convertPR(n, owner, repo.Name))
		}
	}
	return prs, nil
}

func (g *GitHubProvider) RepoPRs(ctx context.Context, owner, name string) ([]models.PullRequest, error) {
	var resp struct {
		Repository struct {
			PullRequests struct {
				Nodes []prNode
			}
		}
	}
	vars := map[string]interface{}{"owner": owner, "name": name}
	if err := g.gql.DoWithContext(ctx, repoPRsQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("listing pull requests for %s/%s: %w", owner, name, err)
	}

	prs := make([]models.PullRequest, 0, len(resp.Repository.PullRequests.Nodes))
	for _, n := range resp.Repository.PullRequests.Nodes {
		prs = append(prs, convertPR(n, owner, name))
	}
	return prs, nil
}

func (g *GitHubProvider) PRBody(ctx context.Context, owner, name string, number int) (string, error) {
	var resp struct {
		Repository struct {
			PullRequest struct {
				BodyText string
			}
		}
	}
	query := `
query($owner: String!, $name: String!, $number: Int!) {
	repository(owner: $owner, name: $name) {
		pullRequest(number: $number) { bodyText }
	}
}`
	vars := map[string]interface{}{"owner": owner, "name": name, "number": number}
	if err := g.gql.DoWithContext(ctx, query, vars, &resp); err != nil {
		return "", fmt.Errorf("fetching body of %s/%s#%d: %w", owner, name, number, err)
	}
	return resp.Repository.PullRequest.BodyText, nil
}

func (g *GitHubProvider) PRFiles(ctx context.Context, owner, name string, number int) ([]models.FileDiff, error) {
	ghFiles, _, err := g.rest.PullRequests.ListFiles(ctx, owner, name, number, &gogithub.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("listing files of %s/%s#%d: %w", owner, name, number, err)
	}

	files := make([]models.FileDiff, 0, len(ghFiles))
	for _, f := range ghFiles {
		files = append(files, models.FileDiff{
			Filename:  f.GetFilename(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
			Patch:     f.GetPatch(),
		})
	}
	return files, nil
}

func (g *GitHubProvider) PRCommits(ctx context.Context, owner, name string, number int) ([]models.Commit, error) {
	ghCommits, _, err := g.rest.PullRequests.ListCommits(ctx, owner, name, number, &gogithub.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("listing commits of %s/%s#%d: %w", owner, name, number, err)
	}

	// The API returns oldest first; the graph wants newest first.
	commits := make([]models.Commit, 0, len(ghCommits))
	for i := len(ghCommits) - 1; i >= 0; i-- {
		c := ghCommits[i]
		parents := make([]string, 0, len(c.Parents))
		for _, p := range c.Parents {
			parents = append(parents, p.GetSHA())
		}
		commits = append(commits, models.Commit{
			SHA:     c.GetSHA(),
			Parents: parents,
			Summary: firstLine(c.GetCommit().GetMessage()),
			Author:  c.GetCommit().GetAuthor().GetName(),
			Date:    c.GetCommit().GetAuthor().GetDate().Time,
		})
	}
	return commits, nil
}

func (g *GitHubProvider) ContributionCalendar(ctx context.Context, login string) (*models.ContributionCalendar, error) {
	var resp struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int
					Weeks              []struct {
						FirstDay         string
						ContributionDays []struct {
							Date              string
							Color             string
							ContributionCount int
						}
					}
				}
			}
		}
	}
	query := `
query($login: String!) {
	user(login: $login) {
		contributionsCollection {
			contributionCalendar {
				totalContributions
				weeks {
					firstDay
					contributionDays { date color contributionCount }
				}
			}
		}
	}
}`
	vars := map[string]interface{}{"login": login}
	if err := g.gql.DoWithContext(ctx, query, vars, &resp); err != nil {
		return nil, fmt.Errorf("fetching contributions for %s: %w", login, err)
	}

	raw := resp.User.ContributionsCollection.ContributionCalendar
	cal := &models.ContributionCalendar{Total: raw.TotalContributions}
	for _, w := range raw.Weeks {
		week := models.ContributionWeek{FirstDay: calendarDate(w.FirstDay)}
		for _, d := range w.ContributionDays {
			week.Days = append(week.Days, models.ContributionDay{
				Date:  calendarDate(d.Date),
				Color: d.Color,
				Count: d.ContributionCount,
			})
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal, nil
}

func (g *GitHubProvider) MergePR(ctx context.Context, pr models.PullRequest) error {
	mutation := `
mutation($id: ID!) {
	mergePullRequest(input: {pullRequestId: $id}) {
		pullRequest { merged }
	}
}`
	vars := map[string]interface{}{"id": pr.ID}
	var resp struct {
		MergePullRequest struct {
			PullRequest struct {
				Merged bool
			}
		}
	}
	if err := g.gql.DoWithContext(ctx, mutation, vars, &resp); err != nil {
		return fmt.Errorf("merging %s#%d: %w", pr.Slug(), pr.Number, err)
	}
	return nil
}

func (g *GitHubProvider) ApprovePR(ctx context.Context, pr models.PullRequest) error {
	mutation := `
mutation($id: ID!) {
	addPullRequestReview(input: {pullRequestId: $id, event: APPROVE}) {
		clientMutationId
	}
}`
	vars := map[string]interface{}{"id": pr.ID}
	var resp struct {
		AddPullRequestReview struct {
			ClientMutationID string
		}
	}
	if err := g.gql.DoWithContext(ctx, mutation, vars, &resp); err != nil {
		return fmt.Errorf("approving %s#%d: %w", pr.Slug(), pr.Number, err)
	}
	return nil
}

const accountIssuesQuery = `
query($login: String!) {
	repositoryOwner(login: $login) {
		repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: PUSHED_AT, direction: DESC}) {
			nodes {
				name
				issues(first: 50, states: OPEN, orderBy: {field: CREATED_AT, direction: ASC}) {
					nodes { number title url createdAt }
				}
			}
		}
	}
}`

func (g *GitHubProvider) AccountIssues(ctx context.Context, owner string) ([]models.Issue, error) {
	var resp struct {
		RepositoryOwner struct {
			Repositories struct {
				Nodes []struct {
					Name   string
					Issues struct {
						Nodes []struct {
							Number    int
							Title     string
							URL       string
							CreatedAt string
						}
					}
				}
			}
		}
	}
	vars := map[string]interface{}{"login": owner}
	if err := g.gql.DoWithContext(ctx, accountIssuesQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("listing issues for %s: %w", owner, err)
	}

	var issues []models.Issue
	for _, repo := range resp.RepositoryOwner.Repositories.Nodes {
		for _, n := range repo.Issues.Nodes {
			issues = append(issues, models.Issue{
				Number:    n.Number,
				Owner:     owner,
				Name:      repo.Name,
				Title:     n.Title,
				URL:       n.URL,
				CreatedAt: timestamp(n.CreatedAt),
			})
		}
	}
	return issues, nil
}

func (g *GitHubProvider) Notifications(ctx context.Context, page int) ([]models.Notification, error) {
	if page < 1 {
		page = 1
	}
	ghNotifs, _, err := g.rest.Activity.ListNotifications(ctx, &gogithub.NotificationListOptions{
		ListOptions: gogithub.ListOptions{PerPage: 50, Page: page},
	})
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	notifs := make([]models.Notification, 0, len(ghNotifs))
	for _, n := range ghNotifs {
		notifs = append(notifs, models.Notification{
			Repo:   n.GetRepository().GetFullName(),
			Kind:   n.GetSubject().GetType(),
			Reason: n.GetReason(),
			State:  g.subjectState(ctx, n.GetSubject().GetURL()),
			Title:  n.GetSubject().GetTitle(),
		})
	}
	return notifs, nil
}

// subjectState resolves the current state of a notification subject
// through the GraphQL resource lookup. Best effort: subjects without a
// state (releases, discussions) and failed lookups yield "".
func (g *GitHubProvider) subjectState(ctx context.Context, apiURL string) string {
	webURL := subjectWebURL(apiURL)
	if webURL == "" {
		return ""
	}
	var resp struct {
		Resource struct {
			State string
		}
	}
	query := `
query($url: URI!) {
	resource(url: $url) {
		... on PullRequest { state }
		... on Issue { state }
	}
}`
	vars := map[string]interface{}{"url": webURL}
	if err := g.gql.DoWithContext(ctx, query, vars, &resp); err != nil {
		return ""
	}
	return resp.Resource.State
}

// subjectWebURL converts a REST subject URL such as
// https://api.github.com/repos/acme/widgets/pulls/7 into the web URL
// the GraphQL resource field expects.
func subjectWebURL(apiURL string) string {
	rest, ok := strings.CutPrefix(apiURL, "https://api.github.com/repos/")
	if !ok {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 4 {
		return ""
	}
	switch parts[2] {
	case "pulls":
		return fmt.Sprintf("https://github.com/%s/%s/pull/%s", parts[0], parts[1], parts[3])
	case "issues":
		return fmt.Sprintf("https://github.com/%s/%s/issues/%s", parts[0], parts[1], parts[3])
	}
	return ""
}

func (g *GitHubProvider) SearchCode(ctx context.Context, query string) ([]models.CodeMatch, error) {
	result, _, err := g.rest.Search.Code(ctx, query, &gogithub.SearchOptions{
		ListOptions: gogithub.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, fmt.Errorf("searching code: %w", err)
	}

	matches := make([]models.CodeMatch, 0, len(result.CodeResults))
	for _, r := range result.CodeResults {
		matches = append(matches, models.CodeMatch{
			Repo: r.GetRepository().GetFullName(),
			Path: r.GetPath(),
			URL:  r.GetHTMLURL(),
		})
	}
	return matches, nil
}

func convertPR(n prNode, owner, name string) models.PullRequest {
	var reviewers []string
	for _, r := range n.ReviewRequests.Nodes {
		switch {
		case r.RequestedReviewer.Login != "":
			reviewers = append(reviewers, r.RequestedReviewer.Login)
		case r.RequestedReviewer.Name != "":
			reviewers = append(reviewers, r.RequestedReviewer.Name)
		}
	}
	state := models.MergeState(n.MergeStateStatus)
	if state == "" {
		state = models.MergeStateUnknown
	}
	return models.PullRequest{
		ID:             n.ID,
		Number:         n.Number,
		Owner:          owner,
		Name:           name,
		Title:          n.Title,
		URL:            n.URL,
		CreatedAt:      timestamp(n.CreatedAt),
		MergeState:     state,
		ReviewDecision: models.ReviewDecision(n.ReviewDecision),
		Reviewers:      reviewers,
	}
}

func timestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func calendarDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func firstLine(msg string) string {
	for i := 0; i < len(msg); i++ {
		if msg[i] == '\n' {
			return msg[:i]
		}
	}
	return msg
}

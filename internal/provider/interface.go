package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/prdeck/prdeck/internal/config"
	"github.com/prdeck/prdeck/models"
)

// ErrUnsupported is returned (wrapped) when a platform has no equivalent
// of the requested operation.
var ErrUnsupported = errors.New("operation not supported by provider")

// Provider abstracts pull request operations against a Git hosting
// platform. Implementations: GitHub, GitLab.
type Provider interface {
	// Name identifies the provider (e.g. "github", "gitlab").
	Name() string

	// Viewer returns the login of the authenticated user.
	Viewer(ctx context.Context) (string, error)

	// AccountPRs returns all open pull requests across owner's
	// repositories, newest repository activity first.
	AccountPRs(ctx context.Context, owner string) ([]models.PullRequest, error)

	// RepoPRs returns the open pull requests of a single repository.
	RepoPRs(ctx context.Context, owner, name string) ([]models.PullRequest, error)

	// PRBody returns the description text of one pull request.
	PRBody(ctx context.Context, owner, name string, number int) (string, error)

	// PRFiles returns the changed files of one pull request.
	PRFiles(ctx context.Context, owner, name string, number int) ([]models.FileDiff, error)

	// PRCommits returns the commits of one pull request, newest first.
	PRCommits(ctx context.Context, owner, name string, number int) ([]models.Commit, error)

	// ContributionCalendar returns login's contribution activity for the
	// trailing year.
	ContributionCalendar(ctx context.Context, login string) (*models.ContributionCalendar, error)

	// MergePR merges the pull request.
	MergePR(ctx context.Context, pr models.PullRequest) error

	// ApprovePR submits an approving review on the pull request.
	ApprovePR(ctx context.Context, pr models.PullRequest) error
}

// IssueLister is implemented by providers that can list open issues.
type IssueLister interface {
	AccountIssues(ctx context.Context, owner string) ([]models.Issue, error)
}

// NotificationLister is implemented by providers with an inbox API.
type NotificationLister interface {
	Notifications(ctx context.Context, page int) ([]models.Notification, error)
}

// CodeSearcher is implemented by providers with a code search API.
type CodeSearcher interface {
	SearchCode(ctx context.Context, query string) ([]models.CodeMatch, error)
}

// New returns the Provider for the given platform name.
func New(name string, cfg *config.Config) (Provider, error) {
	switch name {
	case "github", "":
		token := cfg.GitHubToken()
		if token == "" {
			return nil, fmt.Errorf("no GitHub token configured; run 'prdeck login'")
		}
		return NewGitHub(cfg.GitHub.Host, token)
	case "gitlab":
		if cfg.GitLab.Token == "" {
			return nil, fmt.Errorf("no GitLab token configured; run 'prdeck login'")
		}
		return NewGitLab(cfg.GitLab.Host, cfg.GitLab.Token)
	default:
		return nil, fmt.Errorf("unsupported provider %q", name)
	}
}

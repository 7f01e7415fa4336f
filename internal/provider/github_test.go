package provider

import (
	"testing"

	"github.com/prdeck/prdeck/models"
)

func TestConvertPR(t *testing.T) {
	n := prNode{
		ID:               "PR_abc",
		Number:           42,
		Title:            "Speed up index rebuild",
		URL:              "https://github.com/acme/widgets/pull/42",
		CreatedAt:        "2025-06-01T09:30:00Z",
		MergeStateStatus: "CLEAN",
		ReviewDecision:   "APPROVED",
	}
	n.ReviewRequests.Nodes = make([]struct {
		RequestedReviewer struct {
			Login string
			Name  string
		}
	}, 2)
	n.ReviewRequests.Nodes[0].RequestedReviewer.Login = "ada"
	n.ReviewRequests.Nodes[1].RequestedReviewer.Name = "platform-team"

	pr := convertPR(n, "acme", "widgets")
	if pr.ID != "PR_abc" || pr.Number != 42 || pr.Owner != "acme" || pr.Name != "widgets" {
		t.Errorf("identity fields = %+v", pr)
	}
	if pr.MergeState != models.MergeStateClean {
		t.Errorf("merge state = %q, want CLEAN", pr.MergeState)
	}
	if pr.ReviewDecision != models.ReviewApproved {
		t.Errorf("review decision = %q, want APPROVED", pr.ReviewDecision)
	}
	if len(pr.Reviewers) != 2 || pr.Reviewers[0] != "ada" || pr.Reviewers[1] != "platform-team" {
		t.Errorf("reviewers = %v", pr.Reviewers)
	}
	if pr.CreatedAt.IsZero() {
		t.Error("createdAt not parsed")
	}
}

func TestConvertPRDefaultsToUnknown(t *testing.T) {
	pr := convertPR(prNode{ID: "PR_x", Number: 1}, "acme", "widgets")
	if pr.MergeState != models.MergeStateUnknown {
		t.Errorf("merge state = %q, want UNKNOWN", pr.MergeState)
	}
}

func TestSubjectWebURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://api.github.com/repos/acme/widgets/pulls/7", "https://github.com/acme/widgets/pull/7"},
		{"https://api.github.com/repos/acme/widgets/issues/12", "https://github.com/acme/widgets/issues/12"},
		{"https://api.github.com/repos/acme/widgets/releases/3", ""},
		{"https://example.com/repos/acme/widgets/pulls/7", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := subjectWebURL(tt.in); got != tt.want {
			t.Errorf("subjectWebURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("subject\n\nbody text"); got != "subject" {
		t.Errorf("firstLine = %q", got)
	}
	if got := firstLine("no newline"); got != "no newline" {
		t.Errorf("firstLine = %q", got)
	}
}

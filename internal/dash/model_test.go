package dash

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbletea"

	"github.com/prdeck/prdeck/models"
)

// fakeProvider serves canned data and records mutations.
type fakeProvider struct {
	prs       map[string][]models.PullRequest // keyed by owner/name
	account   []models.PullRequest
	merged    []string
	failMerge bool
}

func (f *fakeProvider) Name() string                               { return "fake" }
func (f *fakeProvider) Viewer(ctx context.Context) (string, error) { return "ada", nil }

func (f *fakeProvider) AccountPRs(ctx context.Context, owner string) ([]models.PullRequest, error) {
	return f.account, nil
}

func (f *fakeProvider) RepoPRs(ctx context.Context, owner, name string) ([]models.PullRequest, error) {
	return f.prs[owner+"/"+name], nil
}

func (f *fakeProvider) PRBody(ctx context.Context, owner, name string, number int) (string, error) {
	return "body text", nil
}

func (f *fakeProvider) PRFiles(ctx context.Context, owner, name string, number int) ([]models.FileDiff, error) {
	return []models.FileDiff{{Filename: "main.go", Additions: 1}}, nil
}

func (f *fakeProvider) PRCommits(ctx context.Context, owner, name string, number int) ([]models.Commit, error) {
	return []models.Commit{{SHA: "abcdef1234", Summary: "init"}}, nil
}

func (f *fakeProvider) ContributionCalendar(ctx context.Context, login string) (*models.ContributionCalendar, error) {
	return &models.ContributionCalendar{Total: 3}, nil
}

func (f *fakeProvider) MergePR(ctx context.Context, pr models.PullRequest) error {
	if f.failMerge {
		return errors.New("merge rejected")
	}
	f.merged = append(f.merged, pr.ID)
	return nil
}

func (f *fakeProvider) ApprovePR(ctx context.Context, pr models.PullRequest) error { return nil }

// drive runs one queued task to completion through Update, the way the
// bubbletea runtime would.
func drive(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tickMsg); ok {
			return // don't follow the timer chain
		}
		var next tea.Cmd
		_, next = m.Update(msg)
		cmd = next
	}
}

func TestModelLoadsWorkingSetOnInit(t *testing.T) {
	prov := &fakeProvider{account: []models.PullRequest{
		pr("a", 1, "acme", "widgets", models.MergeStateClean),
		pr("b", 2, "acme", "gears", models.MergeStateDirty),
	}}
	ctrl := NewController([]models.Slug{{Owner: "acme"}}, time.Second)
	m := NewModel(ctrl, prov)

	m.ctrl.ReloadAll()
	drive(t, m, m.runPending())

	if len(ctrl.WorkingSet()) != 2 {
		t.Fatalf("working set = %d records, want 2", len(ctrl.WorkingSet()))
	}
	if _, ok := ctrl.Selected(); !ok {
		t.Error("first record should be selected after initial load")
	}
}

func TestModelMergeFlow(t *testing.T) {
	prov := &fakeProvider{
		account: []models.PullRequest{
			pr("a", 1, "acme", "widgets", models.MergeStateClean),
			pr("b", 2, "acme", "widgets", models.MergeStateClean),
		},
		prs: map[string][]models.PullRequest{
			"acme/widgets": {pr("b", 2, "acme", "widgets", models.MergeStateClean)},
		},
	}
	ctrl := NewController([]models.Slug{{Owner: "acme"}}, time.Second)
	m := NewModel(ctrl, prov)
	ctrl.ReloadAll()
	drive(t, m, m.runPending())

	_, cmd := m.handleKey("m")
	drive(t, m, cmd)

	if len(prov.merged) != 1 || prov.merged[0] != "a" {
		t.Fatalf("merged = %v, want [a]", prov.merged)
	}
	// The follow-up scoped reload leaves only the surviving record.
	if got := len(ctrl.WorkingSet()); got != 1 {
		t.Fatalf("working set = %d records, want 1", got)
	}
	if ctrl.WorkingSet()[0].ID != "b" {
		t.Errorf("remaining record = %q, want b", ctrl.WorkingSet()[0].ID)
	}
}

func TestModelPreviewFlow(t *testing.T) {
	prov := &fakeProvider{account: []models.PullRequest{
		pr("a", 1, "acme", "widgets", models.MergeStateClean),
	}}
	ctrl := NewController([]models.Slug{{Owner: "acme"}}, time.Second)
	m := NewModel(ctrl, prov)
	ctrl.ReloadAll()
	drive(t, m, m.runPending())

	_, cmd := m.handleKey("l")
	drive(t, m, cmd)

	content, ok := ctrl.PreviewContent()
	if !ok {
		t.Fatal("body preview not cached after load")
	}
	if content == "" {
		t.Error("empty preview content")
	}
}

func TestModelContributionsStrip(t *testing.T) {
	prov := &fakeProvider{account: []models.PullRequest{
		pr("a", 1, "acme", "widgets", models.MergeStateClean),
	}}
	ctrl := NewController([]models.Slug{{Owner: "acme"}}, time.Second)
	m := NewModel(ctrl, prov)
	m.width = 100
	m.height = 40
	ctrl.ReloadAll()
	drive(t, m, m.runPending())

	_, cmd := m.handleKey("c")
	drive(t, m, cmd)

	view := m.View()
	if !strings.Contains(view, "acme/widgets#1") {
		t.Error("list should stay visible with the contributions pane open")
	}
	if !strings.Contains(view, "acme: 3 contributions") {
		t.Error("contributions strip missing from the view")
	}
}

func TestModelMergeFailureKeepsRecord(t *testing.T) {
	prov := &fakeProvider{
		account:   []models.PullRequest{pr("a", 1, "acme", "widgets", models.MergeStateClean)},
		failMerge: true,
	}
	ctrl := NewController([]models.Slug{{Owner: "acme"}}, time.Second)
	m := NewModel(ctrl, prov)
	ctrl.ReloadAll()
	drive(t, m, m.runPending())

	_, cmd := m.handleKey("m")
	drive(t, m, cmd)

	if len(ctrl.WorkingSet()) != 1 {
		t.Error("failed merge must not remove the record")
	}
	if ctrl.CurrentStatus().Text == "" {
		t.Error("failed merge should post a status message")
	}
}

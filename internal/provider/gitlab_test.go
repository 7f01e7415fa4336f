package provider

import "testing"

func TestMergeStateFromGitLab(t *testing.T) {
	tests := []struct {
		status string
		draft  bool
		want   string
	}{
		{"mergeable", false, "CLEAN"},
		{"conflict", false, "DIRTY"},
		{"draft_status", false, "DRAFT"},
		{"ci_still_running", false, "UNSTABLE"},
		{"blocked_status", false, "BLOCKED"},
		{"discussions_not_resolved", false, "BLOCKED"},
		{"need_rebase", false, "BEHIND"},
		{"checking", false, "UNKNOWN"},
		{"mergeable", true, "DRAFT"},
	}
	for _, tt := range tests {
		if got := mergeStateFromGitLab(tt.status, tt.draft); string(got) != tt.want {
			t.Errorf("mergeStateFromGitLab(%q, %v) = %q, want %q", tt.status, tt.draft, got, tt.want)
		}
	}
}

func TestSplitProjectPath(t *testing.T) {
	tests := []struct {
		url         string
		owner, name string
	}{
		{"https://gitlab.com/acme/widgets/-/merge_requests/7", "acme", "widgets"},
		{"https://gitlab.com/acme/sub/widgets/-/merge_requests/7", "acme/sub", "widgets"},
		{"https://gitlab.example.com/acme/widgets", "acme", "widgets"},
		{"not a url", "", ""},
	}
	for _, tt := range tests {
		owner, name := splitProjectPath(tt.url)
		if owner != tt.owner || name != tt.name {
			t.Errorf("splitProjectPath(%q) = %q, %q; want %q, %q", tt.url, owner, name, tt.owner, tt.name)
		}
	}
}

func TestCountDiffLines(t *testing.T) {
	patch := "--- a/main.go\n+++ b/main.go\n@@ -1,3 +1,4 @@\n context\n+added one\n+added two\n-removed\n"
	adds, dels := countDiffLines(patch)
	if adds != 2 || dels != 1 {
		t.Errorf("countDiffLines = %d adds, %d dels; want 2, 1", adds, dels)
	}
}

package graph

import (
	"testing"
	"time"

	"github.com/prdeck/prdeck/models"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		commits  []models.Commit
		prefixes []string
	}{
		{
			name: "single root has no lanes",
			commits: []models.Commit{
				{SHA: "aaaaaaaaaaaa", Summary: "init"},
			},
			prefixes: []string{""},
		},
		{
			name: "linear chain stays on one lane",
			commits: []models.Commit{
				{SHA: "ccccccc", Parents: []string{"bbbbbbb"}},
				{SHA: "bbbbbbb", Parents: []string{"aaaaaaa"}},
				{SHA: "aaaaaaa"},
			},
			prefixes: []string{"* ", "* ", "* "},
		},
		{
			name: "merge opens a second lane",
			commits: []models.Commit{
				{SHA: "mmmmmmm", Parents: []string{"1111111", "2222222"}},
				{SHA: "1111111", Parents: []string{"aaaaaaa"}},
				{SHA: "2222222", Parents: []string{"aaaaaaa"}},
				{SHA: "aaaaaaa"},
			},
			prefixes: []string{"* ", "* | ", "* | ", "* "},
		},
		{
			name: "feature branch beside mainline",
			commits: []models.Commit{
				{SHA: "mmmmmmm", Parents: []string{"3333333", "fffffff"}},
				{SHA: "fffffff", Parents: []string{"2222222"}},
				{SHA: "3333333", Parents: []string{"2222222"}},
				{SHA: "2222222", Parents: []string{"1111111"}},
				{SHA: "1111111"},
			},
			prefixes: []string{"* ", "* | ", "* | ", "* ", "* "},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Build(tt.commits)
			if len(rows) != len(tt.commits) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tt.commits))
			}
			for i, row := range rows {
				if row.Prefix != tt.prefixes[i] {
					t.Errorf("row %d prefix = %q, want %q", i, row.Prefix, tt.prefixes[i])
				}
				if want := tt.commits[i].ShortSHA(); row.SHA != want {
					t.Errorf("row %d sha = %q, want %q", i, row.SHA, want)
				}
			}
		})
	}
}

func TestBuildPreservesOrderAndFields(t *testing.T) {
	when := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	commits := []models.Commit{
		{SHA: "ccccccc", Parents: []string{"bbbbbbb"}, Summary: "fix flaky retry", Author: "ada", Date: when},
		{SHA: "bbbbbbb", Parents: []string{"aaaaaaa"}, Summary: "add retry", Author: "grace"},
		{SHA: "aaaaaaa", Summary: "init", Author: "ada"},
	}
	rows := Build(commits)
	if rows[0].Summary != "fix flaky retry" || rows[0].Author != "ada" {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[0].Date != "2025-03-14" {
		t.Errorf("date = %q, want 2025-03-14", rows[0].Date)
	}
	if rows[1].Date != "" {
		t.Errorf("zero time should render empty, got %q", rows[1].Date)
	}
	for i, want := range []string{"ccccccc", "bbbbbbb", "aaaaaaa"} {
		if rows[i].SHA != want {
			t.Errorf("row %d sha = %q, want %q", i, rows[i].SHA, want)
		}
	}
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/prdeck/prdeck/internal/provider"
	"github.com/prdeck/prdeck/models"
)

var prsMerge bool

var prsCmd = &cobra.Command{
	Use:   "prs [owner | owner/repo ...]",
	Short: "List open pull requests",
	Long: `Print the open pull requests of the given targets (or the configured
ones), grouped by repository with their merge and review state. With
--merge, offer to merge every cleanly mergeable one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, prov, err := loadProvider()
		if err != nil {
			return err
		}
		targets, err := resolveTargets(ctx, cfg, prov, args)
		if err != nil {
			return err
		}
		prs, err := fetchPRs(ctx, prov, targets)
		if err != nil {
			return err
		}

		if format == "json" {
			return printJSON(prs)
		}

		lastRepo := ""
		for _, pr := range prs {
			if pr.Slug() != lastRepo {
				lastRepo = pr.Slug()
				fmt.Println(lastRepo)
			}
			line := fmt.Sprintf("  #%-5d %-12s %s", pr.Number, pr.MergeState, pr.Title)
			if pr.ReviewDecision != "" {
				line += fmt.Sprintf(" [%s]", pr.ReviewDecision)
			}
			if len(pr.Reviewers) > 0 {
				line += " (awaiting " + strings.Join(pr.Reviewers, ", ") + ")"
			}
			fmt.Println(line)
		}
		if len(prs) == 0 {
			fmt.Println("No open pull requests.")
			return nil
		}

		if prsMerge {
			return mergeClean(ctx, prov, prs)
		}
		return nil
	},
}

// mergeClean merges every cleanly mergeable PR after one confirmation.
func mergeClean(ctx context.Context, prov provider.Provider, prs []models.PullRequest) error {
	var clean []models.PullRequest
	for _, pr := range prs {
		if pr.MergeState == models.MergeStateClean {
			clean = append(clean, pr)
		}
	}
	if len(clean) == 0 {
		fmt.Println("Nothing is cleanly mergeable.")
		return nil
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Merge %d cleanly mergeable pull request(s)?", len(clean))).
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("cancelled: %w", err)
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	for _, pr := range clean {
		if err := prov.MergePR(ctx, pr); err != nil {
			return err
		}
		fmt.Printf("Merged %s#%d\n", pr.Slug(), pr.Number)
	}
	return nil
}

func init() {
	prsCmd.Flags().BoolVar(&prsMerge, "merge", false,
		"merge all cleanly mergeable pull requests (asks once)")
}

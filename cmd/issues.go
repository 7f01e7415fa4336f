package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prdeck/prdeck/internal/provider"
)

var issuesCmd = &cobra.Command{
	Use:   "issues [owner ...]",
	Short: "List open issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, prov, err := loadProvider()
		if err != nil {
			return err
		}
		lister, ok := prov.(provider.IssueLister)
		if !ok {
			return fmt.Errorf("issue listing: %w", provider.ErrUnsupported)
		}
		targets, err := resolveTargets(ctx, cfg, prov, args)
		if err != nil {
			return err
		}

		lastRepo := ""
		for _, t := range targets {
			issues, err := lister.AccountIssues(ctx, t.Owner)
			if err != nil {
				return err
			}
			if format == "json" {
				if err := printJSON(issues); err != nil {
					return err
				}
				continue
			}
			for _, is := range issues {
				if is.Slug() != lastRepo {
					lastRepo = is.Slug()
					fmt.Println(lastRepo)
				}
				fmt.Printf("  #%-5d %s\n", is.Number, is.Title)
			}
			if len(issues) == 0 {
				fmt.Printf("%s: no open issues\n", t.Owner)
			}
		}
		return nil
	},
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prdeck/prdeck/internal/provider"
)

var (
	searchOwner    string
	searchLanguage string
)

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search code across repositories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, prov, err := loadProvider()
		if err != nil {
			return err
		}
		searcher, ok := prov.(provider.CodeSearcher)
		if !ok {
			return fmt.Errorf("code search: %w", provider.ErrUnsupported)
		}

		query := strings.Join(args, " ")
		if searchOwner != "" {
			query += " user:" + searchOwner
		}
		if searchLanguage != "" {
			query += " language:" + searchLanguage
		}

		matches, err := searcher.SearchCode(cmd.Context(), query)
		if err != nil {
			return err
		}
		if format == "json" {
			return printJSON(matches)
		}
		if len(matches) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%s: %s\n", m.Repo, m.Path)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchOwner, "owner", "", "restrict to one user or organisation")
	searchCmd.Flags().StringVar(&searchLanguage, "language", "", "restrict to one language")
}

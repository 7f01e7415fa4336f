package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/prdeck/prdeck/internal/dash"
)

var dashCmd = &cobra.Command{
	Use:   "dash [owner | owner/repo ...]",
	Short: "Open the interactive pull request dashboard",
	Long: `Open the full-screen dashboard over the open pull requests of the given
targets (or the configured ones). Navigate with j/k, cycle the preview
pane with h/l, merge with m, approve with a.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, prov, err := loadProvider()
		if err != nil {
			return err
		}
		targets, err := resolveTargets(cmd.Context(), cfg, prov, args)
		if err != nil {
			return err
		}

		ttl := time.Duration(cfg.UI.StatusMillis) * time.Millisecond
		ctrl := dash.NewController(targets, ttl)
		return dash.NewModel(ctrl, prov).Run()
	},
}

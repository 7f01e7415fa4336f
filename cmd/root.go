package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	format  string
	verbose bool
)

// rootCmd is the base command when called without any subcommands.
// Bare invocation opens the dashboard.
var rootCmd = &cobra.Command{
	Use:   "prdeck",
	Short: "Review and merge pull requests across your accounts from the terminal",
	Long: `prdeck keeps the open pull requests of your accounts and repositories on
one interactive dashboard: preview descriptions, diffs and commit history,
approve and merge without leaving the terminal.

Get started:
  prdeck login            Store a token for GitHub or GitLab
  prdeck dash             Open the interactive dashboard
  prdeck prs              List open pull requests
  prdeck contributions    Show your contribution calendar`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCmd.RunE(cmd, args)
	},
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.prdeck/config.json)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text",
		"output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose/debug output")

	rootCmd.Version = Version
	rootCmd.AddCommand(
		dashCmd,
		prsCmd,
		issuesCmd,
		contributionsCmd,
		notificationsCmd,
		searchCmd,
		loginCmd,
		logoutCmd,
	)
}

func initLogging() {
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}
}

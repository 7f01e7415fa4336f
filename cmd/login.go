package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/prdeck/prdeck/internal/config"
	"github.com/prdeck/prdeck/internal/provider"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a token for GitHub or GitLab",
	Long: `Interactively store an access token in ~/.prdeck/config.json. GitHub
users authenticated through the gh CLI are picked up automatically and
do not need this.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		platform := cfg.Provider
		var token, host string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Platform").
					Options(
						huh.NewOption("GitHub", "github"),
						huh.NewOption("GitLab", "gitlab"),
					).
					Value(&platform),
				huh.NewInput().
					Title("Access token").
					EchoMode(huh.EchoModePassword).
					Value(&token).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("token cannot be empty")
						}
						return nil
					}),
				huh.NewInput().
					Title("Host").
					Description("Leave empty for github.com / gitlab.com").
					Value(&host),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		cfg.Provider = platform
		switch platform {
		case "github":
			cfg.GitHub.Token = strings.TrimSpace(token)
			if host != "" {
				cfg.GitHub.Host = host
			}
		case "gitlab":
			cfg.GitLab.Token = strings.TrimSpace(token)
			if host != "" {
				cfg.GitLab.Host = host
			}
		}

		path, _ := config.Path(cfgFile)
		if err := config.Save(cfg, path); err != nil {
			return err
		}

		// Verify the credential before declaring success.
		prov, err := provider.New(platform, cfg)
		if err != nil {
			return err
		}
		login, err := prov.Viewer(cmd.Context())
		if err != nil {
			return fmt.Errorf("token saved but verification failed: %w", err)
		}
		fmt.Printf("Logged in to %s as %s\n", platform, login)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored token for the active platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		switch cfg.Provider {
		case "gitlab":
			cfg.GitLab.Token = ""
		default:
			cfg.GitHub.Token = ""
		}
		path, _ := config.Path(cfgFile)
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		fmt.Println("Token removed.")
		return nil
	},
}

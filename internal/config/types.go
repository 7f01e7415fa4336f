package config

// Config is the root configuration structure for prdeck.
// Serialised to ~/.prdeck/config.json.
type Config struct {
	// Provider selects the hosting platform: "github" (default) or "gitlab".
	Provider string `mapstructure:"provider" json:"provider"`
	// Targets lists the accounts and repositories shown on the dashboard,
	// as "owner" or "owner/repo" slugs, in display order.
	Targets []string     `mapstructure:"targets" json:"targets"`
	GitHub  GitHubConfig `mapstructure:"github"  json:"github"`
	GitLab  GitLabConfig `mapstructure:"gitlab"  json:"gitlab"`
	UI      UIConfig     `mapstructure:"ui"      json:"ui"`
}

// GitHubConfig holds credentials for a GitHub instance.
type GitHubConfig struct {
	Token string `mapstructure:"token" json:"token"`
	// Host allows enterprise GitHub (e.g. github.mycompany.com).
	Host string `mapstructure:"host"  json:"host"`
}

// GitLabConfig holds credentials for a GitLab instance.
type GitLabConfig struct {
	Token string `mapstructure:"token" json:"token"`
	Host  string `mapstructure:"host"  json:"host"`
}

// UIConfig tunes dashboard behaviour.
type UIConfig struct {
	// StatusMillis is how long transient status messages stay visible.
	StatusMillis int `mapstructure:"status_millis" json:"status_millis"`
}

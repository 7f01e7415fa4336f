package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	DefaultConfigDir  = ".prdeck"
	DefaultConfigFile = "config.json"
)

// Load reads the config file and returns a populated Config. The
// configPath flag may override the default location. A missing file is
// not an error; defaults and environment variables still apply
// (PRDECK_GITHUB_TOKEN, PRDECK_PROVIDER, ...).
func Load(configPath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix("prdeck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(home, DefaultConfigDir))
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !isNotExist(err) {
			// Config file exists but is malformed.
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to disk as JSON.
func Save(cfg *Config, configPath string) error {
	if configPath == "" {
		var err error
		configPath, err = Path("")
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serialising config: %w", err)
	}

	return os.WriteFile(configPath, data, 0o600)
}

// Path returns the effective config file path.
func Path(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// GitHubToken resolves the GitHub credential. Order: the gh CLI's
// hosts.yml for the configured host, then the prdeck config file, then
// the GITHUB_TOKEN environment variable.
func (c *Config) GitHubToken() string {
	host := c.GitHub.Host
	if host == "" {
		host = "github.com"
	}
	if tok := ghCLIToken(host); tok != "" {
		return tok
	}
	if c.GitHub.Token != "" {
		return c.GitHub.Token
	}
	return os.Getenv("GITHUB_TOKEN")
}

// ghCLIToken reads the oauth token the gh CLI stored for host, if any.
func ghCLIToken(host string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "gh", "hosts.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	hosts := map[string]struct {
		OAuthToken string `yaml:"oauth_token"`
	}{}
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		return ""
	}
	return hosts[host].OAuthToken
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "github")
	v.SetDefault("targets", []string{})
	v.SetDefault("github.host", "github.com")
	v.SetDefault("gitlab.host", "gitlab.com")
	v.SetDefault("ui.status_millis", 3000)
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || strings.Contains(err.Error(), "no such file")
}

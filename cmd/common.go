package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prdeck/prdeck/internal/config"
	"github.com/prdeck/prdeck/internal/provider"
	"github.com/prdeck/prdeck/models"
)

// loadProvider builds the configured Provider.
func loadProvider() (*config.Config, provider.Provider, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	prov, err := provider.New(cfg.Provider, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, prov, nil
}

// resolveTargets turns command arguments (or, absent those, the
// configured targets, or the authenticated user) into slugs.
func resolveTargets(ctx context.Context, cfg *config.Config, prov provider.Provider, args []string) ([]models.Slug, error) {
	if len(args) == 0 {
		args = cfg.Targets
	}
	if len(args) > 0 {
		return models.ParseSlugs(args)
	}
	login, err := prov.Viewer(ctx)
	if err != nil {
		return nil, fmt.Errorf("no targets configured and %w", err)
	}
	return []models.Slug{{Owner: login}}, nil
}

// fetchPRs gathers the open pull requests of every target, in target
// order.
func fetchPRs(ctx context.Context, prov provider.Provider, targets []models.Slug) ([]models.PullRequest, error) {
	var all []models.PullRequest
	for _, t := range targets {
		var (
			prs []models.PullRequest
			err error
		)
		if t.IsRepo() {
			prs, err = prov.RepoPRs(ctx, t.Owner, t.Name)
		} else {
			prs, err = prov.AccountPRs(ctx, t.Owner)
		}
		if err != nil {
			return nil, err
		}
		all = append(all, prs...)
	}
	return all, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package models

import (
	"fmt"
	"strings"
)

// Slug identifies either an account ("owner") or a repository
// ("owner/name"). Name is empty for an account slug.
type Slug struct {
	Owner string `json:"owner"`
	Name  string `json:"name,omitempty"`
}

// IsRepo reports whether the slug names a single repository.
func (s Slug) IsRepo() bool { return s.Name != "" }

func (s Slug) String() string {
	if s.Name == "" {
		return s.Owner
	}
	return s.Owner + "/" + s.Name
}

// ParseSlug validates a slug string at the input boundary. Anything with
// more than one separator, or an empty segment, is rejected.
func ParseSlug(raw string) (Slug, error) {
	parts := strings.Split(raw, "/")
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return Slug{}, fmt.Errorf("empty slug")
		}
		return Slug{Owner: parts[0]}, nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return Slug{}, fmt.Errorf("invalid slug %q: empty owner or name", raw)
		}
		return Slug{Owner: parts[0], Name: parts[1]}, nil
	default:
		return Slug{}, fmt.Errorf("invalid slug %q: expected owner or owner/name", raw)
	}
}

// ParseSlugs parses a list of slug arguments, failing on the first bad one.
func ParseSlugs(raw []string) ([]Slug, error) {
	slugs := make([]Slug, 0, len(raw))
	for _, r := range raw {
		s, err := ParseSlug(r)
		if err != nil {
			return nil, err
		}
		slugs = append(slugs, s)
	}
	return slugs, nil
}

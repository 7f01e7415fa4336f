package models

import "time"

// Issue is one open issue on a repository.
type Issue struct {
	Number    int       `json:"number"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Slug returns the issue's repository as "owner/name".
func (i Issue) Slug() string { return i.Owner + "/" + i.Name }

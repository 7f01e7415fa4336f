package models

// Notification is one unread inbox entry. State is the subject's
// current state (OPEN, CLOSED, MERGED), empty when the lookup failed or
// the subject has no state.
type Notification struct {
	Repo   string `json:"repo"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
	State  string `json:"state,omitempty"`
	Title  string `json:"title"`
}

// CodeMatch is one file hit from a code search.
type CodeMatch struct {
	Repo string `json:"repo"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

package types

import "strings"

// Search bounds for job listing queries.
const (
	// DefaultMaxResults is the listing count requested when none is configured.
	DefaultMaxResults = 10
	// MaxResultsLimit caps how many listings a single search may request.
	MaxResultsLimit = 100
)

// SearchCriteria describes a job listing query. Derived from the Profile plus
// CLI overrides; read-only once built.
type SearchCriteria struct {
	Keywords   []string `json:"keywords"`
	Location   string   `json:"location"`
	MaxResults int      `json:"max_results"`
	Remote     bool     `json:"remote"`
}

// SearchTerm joins the top keywords into a single provider query string.
func (c SearchCriteria) SearchTerm() string {
	n := len(c.Keywords)
	if n > 3 {
		n = 3
	}
	return strings.Join(c.Keywords[:n], " ")
}

// JobListing is a single posting returned by the job search provider.
// Listings keep provider result order.
type JobListing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	DatePosted  string `json:"date_posted,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	Salary      string `json:"salary,omitempty"`
	IsRemote    bool   `json:"is_remote,omitempty"`
}

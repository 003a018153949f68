package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/cover-letter-agent/internal/types"
)

const (
	// DefaultBaseURL targets the hosted JSearch API.
	DefaultBaseURL = "https://jsearch.p.rapidapi.com"

	// descriptionLimit truncates listing descriptions before they reach the
	// matching stage; long postings add cost without improving matches.
	descriptionLimit = 500

	searchTimeout = 30 * time.Second
)

// searchResponse mirrors the relevant fields of the provider response.
type searchResponse struct {
	Status string         `json:"status"`
	Data   []providerItem `json:"data"`
}

type providerItem struct {
	Title       string `json:"job_title"`
	Employer    string `json:"employer_name"`
	City        string `json:"job_city"`
	State       string `json:"job_state"`
	Country     string `json:"job_country"`
	Description string `json:"job_description"`
	ApplyLink   string `json:"job_apply_link"`
	PostedAt    string `json:"job_posted_at_datetime_utc"`
	Type        string `json:"job_employment_type"`
	IsRemote    bool   `json:"job_is_remote"`
}

// Client fetches job listings from a JSearch-compatible REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a search client. An empty baseURL targets the hosted API;
// httpClient may be nil to use a default with a request timeout.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: searchTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Search queries the provider and normalizes the response into JobListing
// records, capped at criteria.MaxResults and kept in provider order.
func (c *Client) Search(ctx context.Context, criteria types.SearchCriteria) ([]types.JobListing, error) {
	query := url.Values{}
	term := criteria.SearchTerm()
	if criteria.Location != "" && !criteria.Remote {
		term = term + " in " + criteria.Location
	}
	query.Set("query", term)
	query.Set("num_pages", "1")
	if criteria.Remote {
		query.Set("work_from_home", "true")
	}

	endpoint := c.baseURL + "/search?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &ServiceError{Message: "create search request", Cause: err}
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Message: "search request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{Message: fmt.Sprintf("provider returned HTTP %d", resp.StatusCode)}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ServiceError{Message: "decode provider response", Cause: err}
	}

	listings := make([]types.JobListing, 0, len(parsed.Data))
	for _, item := range parsed.Data {
		if len(listings) == criteria.MaxResults {
			break
		}

		description := truncate(StripHTML(item.Description), descriptionLimit)
		location := joinLocation(item.City, item.State, item.Country)

		listings = append(listings, types.JobListing{
			Title:       item.Title,
			Company:     item.Employer,
			Location:    location,
			Description: description,
			URL:         item.ApplyLink,
			DatePosted:  item.PostedAt,
			JobType:     item.Type,
			IsRemote:    item.IsRemote || isRemoteListing(location, description),
		})
	}

	return listings, nil
}

func joinLocation(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

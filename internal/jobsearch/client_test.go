package jobsearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cover-letter-agent/internal/types"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func writeSearchResponse(t *testing.T, w http.ResponseWriter, items []providerItem) {
	t.Helper()
	err := json.NewEncoder(w).Encode(searchResponse{Status: "OK", Data: items})
	require.NoError(t, err)
}

func TestClientSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes provider items", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
			assert.Equal(t, "Go SQL AWS in Seattle, WA", r.URL.Query().Get("query"))
			assert.Empty(t, r.URL.Query().Get("work_from_home"))

			writeSearchResponse(t, w, []providerItem{{
				Title:       "Backend Engineer",
				Employer:    "Acme Corp",
				City:        "Seattle",
				State:       "WA",
				Country:     "US",
				Description: "<p>Build <b>services</b> in Go.</p>",
				ApplyLink:   "https://example.com/jobs/1",
				Type:        "FULLTIME",
			}})
		})

		client := NewClient(server.URL, "test-key", nil)
		listings, err := client.Search(ctx, types.SearchCriteria{
			Keywords:   []string{"Go", "SQL", "AWS", "Docker"},
			Location:   "Seattle, WA",
			MaxResults: 10,
		})

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, "Backend Engineer", listings[0].Title)
		assert.Equal(t, "Acme Corp", listings[0].Company)
		assert.Equal(t, "Seattle, WA, US", listings[0].Location)
		assert.Equal(t, "Build services in Go.", listings[0].Description)
		assert.Equal(t, "https://example.com/jobs/1", listings[0].URL)
		assert.False(t, listings[0].IsRemote)
	})

	t.Run("remote search drops location from query", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Go", r.URL.Query().Get("query"))
			assert.Equal(t, "true", r.URL.Query().Get("work_from_home"))
			writeSearchResponse(t, w, nil)
		})

		client := NewClient(server.URL, "test-key", nil)
		_, err := client.Search(ctx, types.SearchCriteria{
			Keywords:   []string{"Go"},
			Location:   "Remote",
			MaxResults: 10,
			Remote:     true,
		})
		require.NoError(t, err)
	})

	t.Run("caps results at MaxResults", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			items := make([]providerItem, 8)
			for i := range items {
				items[i] = providerItem{Title: "Engineer", Employer: "Acme"}
			}
			writeSearchResponse(t, w, items)
		})

		client := NewClient(server.URL, "test-key", nil)
		listings, err := client.Search(ctx, types.SearchCriteria{
			Keywords:   []string{"Go"},
			MaxResults: 3,
		})

		require.NoError(t, err)
		assert.Len(t, listings, 3)
	})

	t.Run("truncates long descriptions", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeSearchResponse(t, w, []providerItem{{
				Title:       "Engineer",
				Employer:    "Acme",
				Description: strings.Repeat("a", 2000),
			}})
		})

		client := NewClient(server.URL, "test-key", nil)
		listings, err := client.Search(ctx, types.SearchCriteria{
			Keywords:   []string{"Go"},
			MaxResults: 10,
		})

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Len(t, listings[0].Description, descriptionLimit)
	})

	t.Run("marks remote listings from description text", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeSearchResponse(t, w, []providerItem{{
				Title:       "Engineer",
				Employer:    "Acme",
				Description: "Fully remote position.",
			}})
		})

		client := NewClient(server.URL, "test-key", nil)
		listings, err := client.Search(ctx, types.SearchCriteria{
			Keywords:   []string{"Go"},
			MaxResults: 10,
		})

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.True(t, listings[0].IsRemote)
	})

	t.Run("non-200 response", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		client := NewClient(server.URL, "bad-key", nil)
		_, err := client.Search(ctx, types.SearchCriteria{Keywords: []string{"Go"}, MaxResults: 10})

		var serviceErr *ServiceError
		require.ErrorAs(t, err, &serviceErr)
		assert.Contains(t, serviceErr.Message, "403")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		client := NewClient(server.URL, "test-key", nil)
		_, err := client.Search(ctx, types.SearchCriteria{Keywords: []string{"Go"}, MaxResults: 10})

		var serviceErr *ServiceError
		require.ErrorAs(t, err, &serviceErr)
	})
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text passes through", "Build services in Go.", "Build services in Go."},
		{"tags removed", "<p>Build <b>services</b></p>", "Build services"},
		{"script content dropped", "<p>Hello</p><script>alert(1)</script>", "Hello"},
		{"whitespace collapsed", "  too \n\n  many   spaces ", "too many spaces"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}

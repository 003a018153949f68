package jobsearch

import (
	"context"

	"github.com/jonathan/cover-letter-agent/internal/types"
)

// Searcher finds job listings matching the given criteria. Implementations
// return at most criteria.MaxResults listings in provider result order; an
// empty slice is a valid outcome, not an error.
type Searcher interface {
	Search(ctx context.Context, criteria types.SearchCriteria) ([]types.JobListing, error)
}

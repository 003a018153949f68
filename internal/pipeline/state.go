package pipeline

import "github.com/jonathan/cover-letter-agent/internal/types"

// State is the aggregate threaded through the run. Each stage receives only
// the fields written by earlier stages and hands back its own output, which
// the orchestrator composes into the state; no stage mutates another stage's
// output. The state lives for one run and is discarded afterwards.
type State struct {
	ProfileText string

	Profile  *types.Profile
	Criteria types.SearchCriteria
	Listings []types.JobListing
	Matches  []types.MatchResult
	Letter   *types.CoverLetter

	StepsCompleted []string
}

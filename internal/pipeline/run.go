// Package pipeline provides the high-level orchestration for cover letter
// generation: extract profile, search jobs, match skills, generate letter.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/cover-letter-agent/internal/extraction"
	"github.com/jonathan/cover-letter-agent/internal/jobsearch"
	"github.com/jonathan/cover-letter-agent/internal/letter"
	"github.com/jonathan/cover-letter-agent/internal/llm"
	"github.com/jonathan/cover-letter-agent/internal/matching"
	"github.com/jonathan/cover-letter-agent/internal/observability"
	"github.com/jonathan/cover-letter-agent/internal/types"
)

// Step names reported through progress events.
const (
	StepExtract  = "extract_profile"
	StepSearch   = "search_jobs"
	StepMatch    = "match_skills"
	StepGenerate = "generate_letter"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ProfileText string
	Location    string
	MaxResults  int

	Searcher  jobsearch.Searcher
	LLMClient llm.Client

	// MatchConcurrency bounds parallel per-listing matching; 0 uses the
	// matching package default.
	MatchConcurrency int

	Verbose    bool
	OnProgress ProgressCallback
}

// RunResult is what a completed run produced. Letter is nil when the search
// returned no listings or no listing could be scored; NoMatchReason then
// explains why.
type RunResult struct {
	RunID         uuid.UUID
	State         *State
	Letter        *types.CoverLetter
	NoMatchReason string
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID.String(),
			Content: content,
		})
	}
}

// RunPipeline orchestrates the full cover letter pipeline. Stages execute
// strictly in order; a fatal stage error halts the run and no later stage is
// invoked.
func RunPipeline(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.LLMClient == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if opts.Searcher == nil {
		return nil, fmt.Errorf("job searcher is required")
	}

	runID := uuid.New()
	printer := observability.NewPrinter(os.Stdout)
	state := &State{ProfileText: opts.ProfileText}

	// Step 1: Extract profile
	fmt.Printf("Step 1/4: Extracting profile...\n")
	profile, err := extraction.ExtractProfile(ctx, state.ProfileText, opts.LLMClient)
	if err != nil {
		return nil, fmt.Errorf("profile extraction failed: %w", err)
	}
	state.Profile = profile
	state.StepsCompleted = append(state.StepsCompleted, StepExtract)
	if opts.Verbose {
		printer.PrintProfile(profile)
	}
	emitProgress(&opts, runID, StepExtract,
		fmt.Sprintf("Extracted profile for %s (%d skills)", profile.FullName, len(profile.Skills)), profile)

	// Step 2: Search jobs
	state.Criteria = jobsearch.BuildCriteria(profile, opts.Location, opts.MaxResults)
	fmt.Printf("Step 2/4: Searching jobs (%q in %s)...\n", state.Criteria.SearchTerm(), state.Criteria.Location)
	listings, err := opts.Searcher.Search(ctx, state.Criteria)
	if err != nil {
		return nil, fmt.Errorf("job search failed: %w", err)
	}
	state.Listings = listings
	state.StepsCompleted = append(state.StepsCompleted, StepSearch)
	if opts.Verbose {
		printer.PrintListings(state.Criteria, listings)
	}
	emitProgress(&opts, runID, StepSearch,
		fmt.Sprintf("Found %d listings", len(listings)), nil)

	result := &RunResult{RunID: runID, State: state}

	if len(listings) == 0 {
		fmt.Printf("No job listings found; skipping matching and letter generation.\n")
		result.NoMatchReason = "no matching jobs found"
		return result, nil
	}

	// Step 3: Match skills per listing
	fmt.Printf("Step 3/4: Matching skills across %d listings...\n", len(listings))
	matches, err := matching.MatchListings(ctx, profile, listings, opts.LLMClient, matching.Options{
		Concurrency: opts.MatchConcurrency,
		ErrLog:      os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("skills matching failed: %w", err)
	}
	state.Matches = matches
	state.StepsCompleted = append(state.StepsCompleted, StepMatch)
	if opts.Verbose {
		printer.PrintMatches(matches, listings)
	}
	emitProgress(&opts, runID, StepMatch,
		fmt.Sprintf("Scored %d of %d listings", len(matches), len(listings)), nil)

	best := types.BestMatch(matches)
	if best == nil {
		fmt.Printf("No listing could be scored; skipping letter generation.\n")
		result.NoMatchReason = "no listing could be scored"
		return result, nil
	}

	// Step 4: Generate the letter for the best match
	target := &listings[best.ListingIndex]
	fmt.Printf("Step 4/4: Generating cover letter for %s at %s...\n", target.Title, target.Company)
	coverLetter, err := letter.Generate(ctx, profile, target, best, opts.LLMClient)
	if err != nil {
		return nil, fmt.Errorf("cover letter generation failed: %w", err)
	}
	state.Letter = coverLetter
	state.StepsCompleted = append(state.StepsCompleted, StepGenerate)
	emitProgress(&opts, runID, StepGenerate,
		fmt.Sprintf("Generated letter for %s at %s (%.1f%% match)", coverLetter.JobTitle, coverLetter.Company, coverLetter.MatchPercentage), nil)

	result.Letter = coverLetter
	return result, nil
}

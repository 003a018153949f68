// Package matching scores each job listing against the candidate profile
// using per-listing LLM skill analysis.
package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cover-letter-agent/internal/llm"
	"github.com/jonathan/cover-letter-agent/internal/prompts"
	"github.com/jonathan/cover-letter-agent/internal/schemas"
	"github.com/jonathan/cover-letter-agent/internal/types"
)

// defaultConcurrency bounds parallel per-listing LLM calls.
const defaultConcurrency = 4

// skillMatchesSchema is enforced server-side for providers that support
// structured outputs; other providers are covered by the embedded JSON
// Schema check after the call.
var skillMatchesSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []string{"matches"},
	"properties": map[string]any{
		"matches": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"skill", "user_has_skill", "proficiency_level", "match_score", "evidence"},
				"properties": map[string]any{
					"skill":             map[string]any{"type": "string"},
					"user_has_skill":    map[string]any{"type": "boolean"},
					"proficiency_level": map[string]any{"type": []string{"string", "null"}},
					"match_score":       map[string]any{"type": "number"},
					"evidence": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

// matchesResponse is the expected JSON envelope from the model.
type matchesResponse struct {
	Matches []assessmentItem `json:"matches"`
}

type assessmentItem struct {
	Skill            string   `json:"skill"`
	UserHasSkill     bool     `json:"user_has_skill"`
	ProficiencyLevel string   `json:"proficiency_level"`
	MatchScore       float64  `json:"match_score"`
	Evidence         []string `json:"evidence"`
}

// Options controls how listings are matched.
type Options struct {
	// Concurrency is the number of listings matched in parallel. Values
	// below 1 use a bounded default.
	Concurrency int
	// ErrLog receives one line per skipped listing. May be nil.
	ErrLog io.Writer
}

// MatchListings analyzes every listing against the profile and returns one
// MatchResult per successfully scored listing, in listing order. Listings
// whose model output is malformed are logged and omitted rather than failing
// the run; provider call failures abort with the underlying error.
func MatchListings(ctx context.Context, profile *types.Profile, listings []types.JobListing, client llm.Client, opts Options) ([]types.MatchResult, error) {
	if len(listings) == 0 {
		return []types.MatchResult{}, nil
	}

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}

	// Slot per listing so completion order never changes result order.
	slots := make([]*types.MatchResult, len(listings))
	parseFailures := make([]error, len(listings))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range listings {
		i := i
		g.Go(func() error {
			result, err := matchOne(gCtx, profile, &listings[i], i, client)
			if err != nil {
				var parseErr *ParseError
				if errors.As(err, &parseErr) {
					parseFailures[i] = err
					return nil
				}
				return err
			}
			slots[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]types.MatchResult, 0, len(listings))
	for i, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
			continue
		}
		if parseFailures[i] != nil && opts.ErrLog != nil {
			fmt.Fprintf(opts.ErrLog, "Warning: skipping listing %d (%s at %s): %v\n",
				i, listings[i].Title, listings[i].Company, parseFailures[i])
		}
	}

	return results, nil
}

// matchOne runs the skill analysis for a single listing.
func matchOne(ctx context.Context, profile *types.Profile, listing *types.JobListing, index int, client llm.Client) (*types.MatchResult, error) {
	prompt, err := buildMatchPrompt(profile, listing)
	if err != nil {
		return nil, err
	}

	responseText, err := client.GenerateJSON(ctx, prompt, skillMatchesSchema, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("skill matching call failed for listing %d: %w", index, err)
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.Validate(schemas.SkillMatchesSchema, responseText); err != nil {
		return nil, &ParseError{
			ListingIndex: index,
			Message:      "model output does not match the skill matches schema",
			Cause:        err,
		}
	}

	var parsed matchesResponse
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		return nil, &ParseError{
			ListingIndex: index,
			Message:      "failed to decode skill matches JSON",
			Cause:        err,
		}
	}

	return buildResult(index, parsed.Matches), nil
}

// buildMatchPrompt renders the matching prompt with profile and listing JSON.
func buildMatchPrompt(profile *types.Profile, listing *types.JobListing) (string, error) {
	profileJSON, err := json.MarshalIndent(matchProfileView(profile), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile for matching: %w", err)
	}
	listingJSON, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal listing for matching: %w", err)
	}

	template := prompts.MustGet("matching.json", "match-skills")
	return prompts.Format(template, map[string]string{
		"ProfileJSON": string(profileJSON),
		"ListingJSON": string(listingJSON),
	}), nil
}

// matchProfileView trims the profile to the fields relevant for matching.
func matchProfileView(profile *types.Profile) map[string]any {
	experience := make([]map[string]any, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		experience = append(experience, map[string]any{
			"company":           exp.Company,
			"position":          exp.Position,
			"description":       exp.Description,
			"technologies_used": exp.TechnologiesUsed,
			"key_achievements":  exp.KeyAchievements,
		})
	}

	projects := make([]map[string]any, 0, len(profile.Projects))
	for _, proj := range profile.Projects {
		projects = append(projects, map[string]any{
			"name":              proj.Name,
			"description":       proj.Description,
			"technologies_used": proj.TechnologiesUsed,
		})
	}

	education := make([]map[string]any, 0, len(profile.Education))
	for _, edu := range profile.Education {
		education = append(education, map[string]any{
			"degree":              edu.Degree,
			"field_of_study":      edu.FieldOfStudy,
			"relevant_coursework": edu.RelevantCoursework,
		})
	}

	certifications := make([]map[string]any, 0, len(profile.Certifications))
	for _, cert := range profile.Certifications {
		certifications = append(certifications, map[string]any{
			"name":   cert.Name,
			"issuer": cert.Issuer,
		})
	}

	return map[string]any{
		"skills":         profile.Skills,
		"experience":     experience,
		"projects":       projects,
		"education":      education,
		"certifications": certifications,
	}
}

// buildResult converts assessments into a MatchResult with an aggregate
// 0-100 score: the sum of matched skill scores over the assessment count.
func buildResult(index int, items []assessmentItem) *types.MatchResult {
	result := &types.MatchResult{
		ListingIndex:  index,
		MatchedSkills: []string{},
		GapSkills:     []string{},
		Assessments:   make([]types.SkillAssessment, 0, len(items)),
	}

	var total float64
	for _, item := range items {
		score := clamp(item.MatchScore, 0, 1)
		result.Assessments = append(result.Assessments, types.SkillAssessment{
			Skill:            item.Skill,
			HasSkill:         item.UserHasSkill,
			ProficiencyLevel: item.ProficiencyLevel,
			MatchScore:       score,
			Evidence:         item.Evidence,
		})
		if item.UserHasSkill {
			result.MatchedSkills = append(result.MatchedSkills, item.Skill)
			total += score
		} else {
			result.GapSkills = append(result.GapSkills, item.Skill)
		}
	}

	if len(items) > 0 {
		result.Score = total / float64(len(items)) * 100
	}

	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package letter generates the tailored cover letter body for the selected
// job listing.
package letter

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cover-letter-agent/internal/llm"
	"github.com/jonathan/cover-letter-agent/internal/prompts"
	"github.com/jonathan/cover-letter-agent/internal/types"
)

const (
	// jobDescriptionLimit bounds how much listing text goes into the prompt.
	jobDescriptionLimit = 800

	// Skill emphasis thresholds for prompt content and tailoring notes.
	topSkillThreshold    = 0.7
	strongSkillThreshold = 0.8
	weakGapThreshold     = 0.3
)

// Generate writes the cover letter body for the given listing using its
// match analysis. Failures here are fatal for the run since the letter is
// the terminal required artifact.
func Generate(ctx context.Context, profile *types.Profile, listing *types.JobListing, match *types.MatchResult, client llm.Client) (*types.CoverLetter, error) {
	prompt := buildLetterPrompt(profile, listing, match)

	body, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("cover letter generation failed: %w", err)
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, &llm.ServiceError{Message: "model returned an empty cover letter"}
	}

	return &types.CoverLetter{
		ListingIndex:    match.ListingIndex,
		JobTitle:        listing.Title,
		Company:         listing.Company,
		Body:            body,
		MatchPercentage: match.Score,
		TailoringNotes:  tailoringNotes(match),
	}, nil
}

// buildLetterPrompt renders the letter prompt from profile, listing, and
// match detail.
func buildLetterPrompt(profile *types.Profile, listing *types.JobListing, match *types.MatchResult) string {
	recent := profile.MostRecentExperience()

	recentPosition := "Not specified"
	recentDescription := "No recent experience listed"
	keyAchievements := "No specific achievements listed"
	if recent != nil {
		recentPosition = recent.Position
		if recent.Description != "" {
			recentDescription = recent.Description
		}
		if len(recent.KeyAchievements) > 0 {
			n := len(recent.KeyAchievements)
			if n > 3 {
				n = 3
			}
			keyAchievements = strings.Join(recent.KeyAchievements[:n], "; ")
		}
	}

	summary := profile.ProfessionalSummary
	if summary == "" {
		summary = "No existing summary"
	}

	topSkills := "Skills available in profile"
	if skills := skillsAbove(match, topSkillThreshold, true); len(skills) > 0 {
		if len(skills) > 5 {
			skills = skills[:5]
		}
		topSkills = strings.Join(skills, ", ")
	}

	gaps := "None identified"
	if len(match.GapSkills) > 0 {
		g := match.GapSkills
		if len(g) > 3 {
			g = g[:3]
		}
		gaps = strings.Join(g, ", ")
	}

	location := listing.Location
	if location == "" {
		location = "Not specified"
	}

	description := listing.Description
	if len(description) > jobDescriptionLimit {
		description = description[:jobDescriptionLimit]
	}
	if description == "" {
		description = "No detailed description available"
	}

	template := prompts.MustGet("letter.json", "write-letter")
	return prompts.Format(template, map[string]string{
		"JobTitle":         listing.Title,
		"Company":          listing.Company,
		"Location":         location,
		"Name":             profile.FullName,
		"RecentPosition":   recentPosition,
		"Summary":          summary,
		"TopSkills":        topSkills,
		"GapSkills":        gaps,
		"JobDescription":   description,
		"RecentExperience": recentDescription,
		"KeyAchievements":  keyAchievements,
	})
}

// tailoringNotes derives reviewer guidance from the match detail: gaps worth
// addressing and strong matches worth emphasizing.
func tailoringNotes(match *types.MatchResult) []string {
	var notes []string

	missing := make([]string, 0)
	for _, a := range match.Assessments {
		if !a.HasSkill && a.MatchScore < weakGapThreshold {
			missing = append(missing, a.Skill)
		}
	}
	if len(missing) > 0 {
		if len(missing) > 3 {
			missing = missing[:3]
		}
		notes = append(notes, fmt.Sprintf(
			"Consider highlighting transferable skills or learning interest in: %s",
			strings.Join(missing, ", ")))
	}

	strong := skillsAbove(match, strongSkillThreshold, false)
	if len(strong) > 0 {
		if len(strong) > 3 {
			strong = strong[:3]
		}
		notes = append(notes, fmt.Sprintf(
			"Emphasize these strong skill matches: %s",
			strings.Join(strong, ", ")))
	}

	return notes
}

// skillsAbove returns matched skills whose score clears the threshold.
// exclusive selects strict comparison.
func skillsAbove(match *types.MatchResult, threshold float64, exclusive bool) []string {
	var skills []string
	for _, a := range match.Assessments {
		if !a.HasSkill {
			continue
		}
		if (exclusive && a.MatchScore > threshold) || (!exclusive && a.MatchScore >= threshold) {
			skills = append(skills, a.Skill)
		}
	}
	return skills
}

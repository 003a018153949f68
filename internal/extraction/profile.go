// Package extraction turns free-text candidate profiles into structured
// Profile records via LLM extraction.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cover-letter-agent/internal/llm"
	"github.com/jonathan/cover-letter-agent/internal/prompts"
	"github.com/jonathan/cover-letter-agent/internal/schemas"
	"github.com/jonathan/cover-letter-agent/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ExtractProfile parses raw profile text into a structured Profile using the
// LLM client. The response is schema-checked and field-validated before it is
// accepted; any mismatch is a *ParseError and fatal to the run.
func ExtractProfile(ctx context.Context, profileText string, client llm.Client) (*types.Profile, error) {
	if strings.TrimSpace(profileText) == "" {
		return nil, &ParseError{Message: "profile text is empty"}
	}

	prompt := buildExtractionPrompt(profileText)

	responseText, err := client.GenerateJSON(ctx, prompt, nil, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("profile extraction call failed: %w", err)
	}

	responseText = llm.CleanJSONBlock(responseText)

	// Schema check first so malformed output fails with field paths instead
	// of a bare decode error.
	if err := schemas.Validate(schemas.ProfileSchema, responseText); err != nil {
		return nil, &ParseError{
			Message: "model output does not match the profile schema",
			Cause:   err,
		}
	}

	var profile types.Profile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return nil, &ParseError{
			Message: "failed to decode profile JSON",
			Cause:   err,
		}
	}

	if err := postProcessProfile(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// buildExtractionPrompt constructs the prompt for structured extraction
func buildExtractionPrompt(profileText string) string {
	template := prompts.MustGet("extraction.json", "extract-profile")
	return prompts.Format(template, map[string]string{
		"ProfileText": profileText,
	})
}

// postProcessProfile normalizes skills and enforces required fields.
func postProcessProfile(profile *types.Profile) error {
	// Dedupe and trim skills, preserving first-seen order
	seen := make(map[string]bool)
	skills := make([]string, 0, len(profile.Skills))
	for _, skill := range profile.Skills {
		trimmed := strings.TrimSpace(skill)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, trimmed)
	}
	profile.Skills = skills

	if err := validate.Struct(profile); err != nil {
		return &ParseError{
			Message: "extracted profile is missing required fields",
			Cause:   err,
		}
	}

	return nil
}

package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cover-letter-agent/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		FullName: "Jane Doe",
		ContactInfo: types.ContactInfo{
			Email:    "jane@example.com",
			Location: "Seattle, WA",
		},
		Skills: []string{"Go", "PostgreSQL", "AWS", "Docker", "Terraform", "Kafka", "Redis"},
		Experience: []types.Experience{
			{Company: "Acme", Position: "Engineer"},
		},
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "Extracted Profile")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Seattle, WA")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "and 2 more")
	assert.NotContains(t, output, "Redis")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintListings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	criteria := types.SearchCriteria{
		Keywords: []string{"Go", "SQL"},
		Location: "Remote",
	}
	listings := []types.JobListing{
		{Title: "Backend Engineer", Company: "Acme"},
		{Title: "Platform Engineer", Company: "Initech"},
	}

	p.PrintListings(criteria, listings)
	output := buf.String()

	assert.Contains(t, output, "Job Search Results")
	assert.Contains(t, output, "Go SQL")
	assert.Contains(t, output, "Remote")
	assert.Contains(t, output, "Backend Engineer at Acme")
	assert.Contains(t, output, "Platform Engineer at Initech")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	listings := []types.JobListing{
		{Title: "Backend Engineer", Company: "Acme"},
	}
	results := []types.MatchResult{
		{
			ListingIndex:  0,
			Score:         72.5,
			MatchedSkills: []string{"Go", "PostgreSQL"},
			GapSkills:     []string{"Terraform"},
		},
	}

	p.PrintMatches(results, listings)
	output := buf.String()

	assert.Contains(t, output, "Skill Match Scores")
	assert.Contains(t, output, "72.5")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Go, PostgreSQL")
	assert.Contains(t, output, "Terraform")
}

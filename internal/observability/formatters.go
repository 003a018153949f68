// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cover-letter-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the extracted profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.ContactInfo.Email))
	if profile.ContactInfo.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.ContactInfo.Location))
	}
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\nExperience entries: %d\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d", len(profile.Education)))

	p.printBox("Extracted Profile", sb.String())
}

// PrintListings outputs a summary of the search results.
func (p *Printer) PrintListings(criteria types.SearchCriteria, listings []types.JobListing) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Query:    %s\n", criteria.SearchTerm()))
	sb.WriteString(fmt.Sprintf("Location: %s\n", criteria.Location))
	sb.WriteString(fmt.Sprintf("Results:  %d\n", len(listings)))
	sb.WriteString("\n")

	count := min(len(listings), maxItemsToShow)
	for i := 0; i < count; i++ {
		l := listings[i]
		sb.WriteString(fmt.Sprintf("  %d. %s at %s\n", i+1, l.Title, l.Company))
	}
	if len(listings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(listings)-maxItemsToShow))
	}

	p.printBox("Job Search Results", sb.String())
}

// PrintMatches outputs the per-listing match scores in listing order.
func (p *Printer) PrintMatches(results []types.MatchResult, listings []types.JobListing) {
	var sb strings.Builder
	for _, r := range results {
		title := "(unknown)"
		if r.ListingIndex >= 0 && r.ListingIndex < len(listings) {
			title = listings[r.ListingIndex].Title
		}
		sb.WriteString(fmt.Sprintf("%5.1f  %s\n", r.Score, title))
		if len(r.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("       matched: %s\n", strings.Join(firstN(r.MatchedSkills, maxItemsToShow), ", ")))
		}
		if len(r.GapSkills) > 0 {
			sb.WriteString(fmt.Sprintf("       gaps:    %s\n", strings.Join(firstN(r.GapSkills, maxItemsToShow), ", ")))
		}
	}

	p.printBox("Skill Match Scores", sb.String())
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

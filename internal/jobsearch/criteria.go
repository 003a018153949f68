// Package jobsearch builds search criteria from the candidate profile and
// fetches live job listings from an external search provider.
package jobsearch

import (
	"strings"

	"github.com/jonathan/cover-letter-agent/internal/types"
)

// maxKeywords caps the derived keyword list.
const maxKeywords = 10

// remoteLocations are treated as a remote-only search rather than a place.
var remoteLocations = map[string]bool{
	"remote":   true,
	"anywhere": true,
	"global":   true,
}

// BuildCriteria derives SearchCriteria from the extracted profile plus
// optional overrides. locationOverride wins over the profile's own location;
// maxResults must already be validated by the caller.
func BuildCriteria(profile *types.Profile, locationOverride string, maxResults int) types.SearchCriteria {
	location := locationOverride
	if location == "" {
		location = profile.ContactInfo.Location
	}
	if location == "" {
		location = "Remote"
	}

	return types.SearchCriteria{
		Keywords:   deriveKeywords(profile),
		Location:   location,
		MaxResults: maxResults,
		Remote:     remoteLocations[strings.ToLower(location)],
	}
}

// deriveKeywords collects search terms from top skills, recent position
// titles, and recently used technologies, deduplicated in that order.
func deriveKeywords(profile *types.Profile) []string {
	var raw []string

	n := len(profile.Skills)
	if n > 5 {
		n = 5
	}
	raw = append(raw, profile.Skills[:n]...)

	for i, exp := range profile.Experience {
		if i >= 2 {
			break
		}
		raw = append(raw, exp.Position)
	}

	for i, exp := range profile.Experience {
		if i >= 2 {
			break
		}
		t := len(exp.TechnologiesUsed)
		if t > 3 {
			t = 3
		}
		raw = append(raw, exp.TechnologiesUsed[:t]...)
	}

	seen := make(map[string]bool)
	keywords := make([]string, 0, len(raw))
	for _, k := range raw {
		trimmed := strings.TrimSpace(k)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, trimmed)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}

// isRemoteListing reports whether a listing looks remote based on its
// location and description text.
func isRemoteListing(location, description string) bool {
	haystack := strings.ToLower(location + " " + description)
	for _, indicator := range []string{"remote", "work from home", "wfh", "anywhere", "virtual"} {
		if strings.Contains(haystack, indicator) {
			return true
		}
	}
	return false
}

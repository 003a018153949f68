package types

// SkillAssessment is the per-skill judgement produced by the matching stage.
type SkillAssessment struct {
	Skill            string   `json:"skill"`
	HasSkill         bool     `json:"has_skill"`
	ProficiencyLevel string   `json:"proficiency_level,omitempty"`
	MatchScore       float64  `json:"match_score"` // 0.0-1.0
	Evidence         []string `json:"evidence,omitempty"`
}

// MatchResult holds the skill analysis for one job listing. ListingIndex
// refers back to the listing's position in the search results, which is how
// ties between equally scored listings are broken.
type MatchResult struct {
	ListingIndex  int               `json:"listing_index"`
	MatchedSkills []string          `json:"matched_skills"`
	GapSkills     []string          `json:"gap_skills"`
	Score         float64           `json:"score"` // 0-100
	Assessments   []SkillAssessment `json:"assessments,omitempty"`
}

// BestMatch returns the result with the highest score. Ties go to the result
// covering the earlier listing. Returns nil for an empty slice.
func BestMatch(results []MatchResult) *MatchResult {
	var best *MatchResult
	for i := range results {
		r := &results[i]
		if best == nil || r.Score > best.Score ||
			(r.Score == best.Score && r.ListingIndex < best.ListingIndex) {
			best = r
		}
	}
	return best
}

package types

// CoverLetter is the terminal artifact of a pipeline run: the letter body for
// the selected listing plus match context for the caller.
type CoverLetter struct {
	ListingIndex    int      `json:"listing_index"`
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	Body            string   `json:"body"`
	MatchPercentage float64  `json:"match_percentage"` // 0-100
	TailoringNotes  []string `json:"tailoring_notes,omitempty"`
}

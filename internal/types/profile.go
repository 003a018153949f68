// Package types defines the data artifacts passed between pipeline stages.
package types

// ContactInfo holds the candidate's contact details.
type ContactInfo struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Location  string `json:"location,omitempty"`
}

// Education is a single entry in the candidate's education history.
type Education struct {
	Institution        string   `json:"institution"`
	Degree             string   `json:"degree"`
	FieldOfStudy       string   `json:"field_of_study,omitempty"`
	GraduationDate     string   `json:"graduation_date,omitempty"`
	GPA                float64  `json:"gpa,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework,omitempty"`
}

// Experience is a single work history entry, ordered most recent first.
type Experience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Description      string   `json:"description"`
	KeyAchievements  []string `json:"key_achievements,omitempty"`
	TechnologiesUsed []string `json:"technologies_used,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	TechnologiesUsed []string `json:"technologies_used,omitempty"`
	URL              string   `json:"url,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

// Certification is a professional certification entry.
type Certification struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issue_date,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

// Profile is the structured form of the candidate's free-text profile.
// It is produced once by the extraction stage and never mutated afterwards.
type Profile struct {
	FullName            string          `json:"full_name" validate:"required"`
	ContactInfo         ContactInfo     `json:"contact_info" validate:"required"`
	ProfessionalSummary string          `json:"professional_summary,omitempty"`
	Skills              []string        `json:"skills" validate:"required,min=1"`
	Education           []Education     `json:"education,omitempty"`
	Experience          []Experience    `json:"experience,omitempty"`
	Projects            []Project       `json:"projects,omitempty"`
	Certifications      []Certification `json:"certifications,omitempty"`
	Languages           []string        `json:"languages,omitempty"`
}

// MostRecentExperience returns the first experience entry, or nil if none.
func (p *Profile) MostRecentExperience() *Experience {
	if len(p.Experience) == 0 {
		return nil
	}
	return &p.Experience[0]
}

package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileSchema(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{
			name: "minimal valid profile",
			content: `{
				"full_name": "Jane Doe",
				"contact_info": {"email": "jane@example.com"},
				"skills": ["Go"]
			}`,
			valid: true,
		},
		{
			name: "full profile with optional sections",
			content: `{
				"full_name": "Jane Doe",
				"contact_info": {"email": "jane@example.com", "phone": "555-0100"},
				"professional_summary": "Backend engineer.",
				"skills": ["Go", "PostgreSQL"],
				"experience": [{"company": "Acme", "position": "Engineer"}],
				"education": [{"institution": "State University", "degree": "BS"}]
			}`,
			valid: true,
		},
		{
			name:    "missing full_name",
			content: `{"contact_info": {"email": "a@b.com"}, "skills": ["Go"]}`,
			valid:   false,
		},
		{
			name:    "missing contact email",
			content: `{"full_name": "Jane", "contact_info": {}, "skills": ["Go"]}`,
			valid:   false,
		},
		{
			name:    "empty skills array",
			content: `{"full_name": "Jane", "contact_info": {"email": "a@b.com"}, "skills": []}`,
			valid:   false,
		},
		{
			name:    "skills with wrong item type",
			content: `{"full_name": "Jane", "contact_info": {"email": "a@b.com"}, "skills": [42]}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(ProfileSchema, tt.content)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateSkillMatchesSchema(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{
			name: "valid matches",
			content: `{"matches": [
				{"skill": "Go", "user_has_skill": true, "match_score": 0.9},
				{"skill": "Kubernetes", "user_has_skill": false, "match_score": 0.1}
			]}`,
			valid: true,
		},
		{
			name:    "empty matches array is allowed",
			content: `{"matches": []}`,
			valid:   true,
		},
		{
			name:    "missing matches key",
			content: `{"results": []}`,
			valid:   false,
		},
		{
			name:    "score above range",
			content: `{"matches": [{"skill": "Go", "user_has_skill": true, "match_score": 1.5}]}`,
			valid:   false,
		},
		{
			name:    "missing user_has_skill",
			content: `{"matches": [{"skill": "Go", "match_score": 0.5}]}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(SkillMatchesSchema, tt.content)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "missing.schema.json", loadErr.Name)
}

func TestValidateJSONStringMalformedDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, `{not json`)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProfileFixture creates a profile file for Validate to find.
func writeProfileFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe, skills: Go"), 0o644))
	return path
}

func validConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Profile:    writeProfileFixture(t),
		MaxResults: 10,
		Format:     "text",
		Provider:   "openai",
		APIKey:     "test-key",
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"profile": "profile.txt",
		"location": "Remote",
		"max_results": 5,
		"format": "json"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "profile.txt", cfg.Profile)
	assert.Equal(t, "Remote", cfg.Location)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   bool
		wantInMsg string
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:      "missing profile",
			mutate:    func(c *Config) { c.Profile = "" },
			wantErr:   true,
			wantInMsg: "profile",
		},
		{
			name:      "profile file not found",
			mutate:    func(c *Config) { c.Profile = "/nonexistent/profile.txt" },
			wantErr:   true,
			wantInMsg: "not found",
		},
		{
			name:      "zero max results",
			mutate:    func(c *Config) { c.MaxResults = 0 },
			wantErr:   true,
			wantInMsg: "max_results",
		},
		{
			name:      "negative max results",
			mutate:    func(c *Config) { c.MaxResults = -3 },
			wantErr:   true,
			wantInMsg: "max_results",
		},
		{
			name:      "max results over limit",
			mutate:    func(c *Config) { c.MaxResults = 500 },
			wantErr:   true,
			wantInMsg: "must not exceed",
		},
		{
			name:      "bad format",
			mutate:    func(c *Config) { c.Format = "yaml" },
			wantErr:   true,
			wantInMsg: "format",
		},
		{
			name:      "bad provider",
			mutate:    func(c *Config) { c.Provider = "acme" },
			wantErr:   true,
			wantInMsg: "provider",
		},
		{
			name:      "missing api key",
			mutate:    func(c *Config) { c.APIKey = "" },
			wantErr:   true,
			wantInMsg: "api_key",
		},
		{
			name:      "temperature out of range",
			mutate:    func(c *Config) { c.Temp = 3.5 },
			wantErr:   true,
			wantInMsg: "temperature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.wantInMsg)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Location: "Berlin"}
	merged := cfg.MergeWithDefaults(Config{
		Location:   "Remote",
		MaxResults: 10,
		Format:     "text",
		Provider:   "openai",
		Temp:       0.1,
	})

	assert.Equal(t, "Berlin", merged.Location) // explicit value wins
	assert.Equal(t, 10, merged.MaxResults)
	assert.Equal(t, "text", merged.Format)
	assert.Equal(t, "openai", merged.Provider)
	assert.InDelta(t, 0.1, merged.Temp, 0.0001)
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "env-openai-key")
	t.Setenv(EnvGeminiAPIKey, "env-gemini-key")
	t.Setenv(EnvOpenAIModel, "env-model")
	t.Setenv(EnvSearchAPIKey, "env-search-key")

	t.Run("openai provider reads openai key", func(t *testing.T) {
		cfg := Config{Provider: "openai"}
		cfg.ApplyEnvironment()
		assert.Equal(t, "env-openai-key", cfg.APIKey)
		assert.Equal(t, "env-model", cfg.Model)
		assert.Equal(t, "env-search-key", cfg.SearchAPIKey)
	})

	t.Run("gemini provider reads gemini key", func(t *testing.T) {
		cfg := Config{Provider: "gemini"}
		cfg.ApplyEnvironment()
		assert.Equal(t, "env-gemini-key", cfg.APIKey)
	})

	t.Run("explicit key wins over environment", func(t *testing.T) {
		cfg := Config{Provider: "openai", APIKey: "flag-key"}
		cfg.ApplyEnvironment()
		assert.Equal(t, "flag-key", cfg.APIKey)
	})
}

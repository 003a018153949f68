package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cover-letter-agent/internal/config"
	"github.com/jonathan/cover-letter-agent/internal/jobsearch"
	"github.com/jonathan/cover-letter-agent/internal/llm"
	"github.com/jonathan/cover-letter-agent/internal/pipeline"
	"github.com/jonathan/cover-letter-agent/internal/types"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Run the full cover letter pipeline end-to-end",
	Long: `Orchestrates the entire cover letter process: profile extraction -> job search -> skills matching -> letter generation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath    string
	genProfile       string
	genLocation      string
	genMaxResults    int
	genOutput        string
	genFormat        string
	genProvider      string
	genAPIKey        string
	genModel         string
	genBaseURL       string
	genSearchAPIKey  string
	genSearchBaseURL string
	genVerbose       bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to the free-text profile file")
	generateCommand.Flags().StringVarP(&genLocation, "location", "l", "", "Search location (\"Remote\" for remote-only)")
	generateCommand.Flags().IntVar(&genMaxResults, "max-results", 0, fmt.Sprintf("Maximum listings to fetch (1-%d, default %d)", types.MaxResultsLimit, types.DefaultMaxResults))
	generateCommand.Flags().StringVarP(&genOutput, "output", "o", "", "Output file path (default: stdout)")
	generateCommand.Flags().StringVar(&genFormat, "format", "", "Output format: text or json (default text)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed stage summaries")

	generateCommand.Flags().StringVar(&genProvider, "provider", "", "LLM provider: openai or gemini (default openai)")
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "LLM API key (defaults to OPENAI_API_KEY / GEMINI_API_KEY env var)")
	generateCommand.Flags().StringVar(&genModel, "model", "", "Model identifier override (defaults to OPENAI_MODEL env var)")
	generateCommand.Flags().StringVar(&genBaseURL, "base-url", "", "OpenAI-compatible API base URL override")

	generateCommand.Flags().StringVar(&genSearchAPIKey, "search-api-key", "", "Job search provider API key (defaults to JOB_SEARCH_API_KEY env var)")
	generateCommand.Flags().StringVar(&genSearchBaseURL, "search-base-url", "", "Job search provider base URL override")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority).
	// Only override if the flag was explicitly set.
	if cmd.Flags().Changed("profile") {
		cfg.Profile = genProfile
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = genLocation
	}
	if cmd.Flags().Changed("max-results") {
		// Explicit zero or negative is rejected here rather than silently
		// replaced by the default.
		if genMaxResults <= 0 {
			return &config.ConfigurationError{Setting: "max_results", Message: "must be a positive integer"}
		}
		cfg.MaxResults = genMaxResults
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = genOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = genFormat
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = genProvider
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = genBaseURL
	}
	if cmd.Flags().Changed("search-api-key") {
		cfg.SearchAPIKey = genSearchAPIKey
	}
	if cmd.Flags().Changed("search-base-url") {
		cfg.SearchBaseURL = genSearchBaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	// Step 3: Apply defaults, then fill credentials from the environment
	cfg = cfg.MergeWithDefaults(config.Config{
		MaxResults: types.DefaultMaxResults,
		Format:     "text",
		Provider:   "openai",
		Temp:       llm.DefaultTemperature,
	})
	cfg.ApplyEnvironment()

	// Step 4: Validate everything before any network call
	if err := cfg.Validate(); err != nil {
		return err
	}

	profileText, err := os.ReadFile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	// Step 5: Build collaborators
	llmClient, err := buildLLMClient(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = llmClient.Close() }()

	searcher := jobsearch.NewClient(cfg.SearchBaseURL, cfg.SearchAPIKey, nil)

	// Step 6: Run the pipeline
	result, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		ProfileText: string(profileText),
		Location:    cfg.Location,
		MaxResults:  cfg.MaxResults,
		Searcher:    searcher,
		LLMClient:   llmClient,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if result.Letter == nil {
		fmt.Printf("Done: %s.\n", result.NoMatchReason)
		return nil
	}

	return writeLetter(result.Letter, cfg.Output, cfg.Format)
}

// buildLLMClient constructs the provider client from merged configuration.
func buildLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	var llmCfg *llm.Config
	switch cfg.Provider {
	case "gemini":
		llmCfg = llm.DefaultGeminiConfig()
	default:
		llmCfg = llm.DefaultOpenAIConfig()
	}
	if cfg.Model != "" {
		llmCfg = llmCfg.WithAllModels(cfg.Model)
	}
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Temp > 0 {
		llmCfg.Temperature = float32(cfg.Temp)
	}

	return llm.NewClient(ctx, llmCfg, cfg.APIKey)
}

// writeLetter renders the letter and writes it in one shot so a failed run
// never leaves a partial output file behind.
func writeLetter(coverLetter *types.CoverLetter, outputPath, format string) error {
	var rendered []byte
	switch format {
	case "json":
		data, err := json.MarshalIndent(coverLetter, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode letter JSON: %w", err)
		}
		rendered = append(data, '\n')
	default:
		rendered = []byte(formatLetterText(coverLetter))
	}

	if outputPath == "" {
		_, err := os.Stdout.Write(rendered)
		return err
	}

	if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Cover letter written to: %s (%.1f%% match)\n", outputPath, coverLetter.MatchPercentage)
	return nil
}

// formatLetterText renders the human-readable output format.
func formatLetterText(coverLetter *types.CoverLetter) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cover letter for %s at %s (%.1f%% match)\n", coverLetter.JobTitle, coverLetter.Company, coverLetter.MatchPercentage))
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")
	sb.WriteString(coverLetter.Body)
	sb.WriteString("\n")

	if len(coverLetter.TailoringNotes) > 0 {
		sb.WriteString("\nTailoring suggestions:\n")
		for _, note := range coverLetter.TailoringNotes {
			sb.WriteString(fmt.Sprintf("  • %s\n", note))
		}
	}

	return sb.String()
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-mentor/internal/ingestion"
	"github.com/jonathan/resume-mentor/internal/observability"
	"github.com/jonathan/resume-mentor/internal/schemas"
	"github.com/jonathan/resume-mentor/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Analyze a resume (PDF or text file) against a job description (text file or URL) and print the structured report plus mentor guidance as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeJDFile     string
	analyzeJDURL      string
	analyzeResumeFile string
	analyzeOutFile    string
	analyzeConfigFile string
	analyzeAPIKey     string
	analyzeThreshold  float64
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file (.pdf or plain text)")
	analyzeCmd.Flags().StringVarP(&analyzeOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", 0, "Skill match threshold (default 0.6)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a readable summary to stderr")

	rootCmd.AddCommand(analyzeCmd)
}

// AnalyzeOutput is the JSON document the analyze command emits.
type AnalyzeOutput struct {
	RunID    string                `json:"run_id"`
	Report   *types.AnalysisReport `json:"report"`
	Guidance *types.GuidanceResult `json:"guidance"`
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeJDFile == "" && analyzeJDURL == "" {
		return fmt.Errorf("either --jd or --jd-url is required")
	}
	if analyzeJDFile != "" && analyzeJDURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive")
	}
	if analyzeResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}

	cfg, err := resolveConfig(analyzeConfigFile)
	if err != nil {
		return err
	}
	if analyzeAPIKey != "" {
		cfg.APIKey = analyzeAPIKey
	}
	if analyzeThreshold > 0 {
		cfg.Threshold = analyzeThreshold
	}

	ctx := context.Background()

	analyzer, generator, cleanup, err := buildComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	jdText, err := loadJobDescription(ctx)
	if err != nil {
		return err
	}
	resumeText, err := loadResume(analyzeResumeFile)
	if err != nil {
		return err
	}

	report, err := analyzer.Run(ctx, jdText, resumeText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	if err := schemas.ValidateReport(reportJSON); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}

	result := generator.Generate(ctx, report)

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintReport(report, analyzer.Vocabulary().Skills)
		printer.PrintGuidance(result)
	}

	output, err := json.MarshalIndent(AnalyzeOutput{
		RunID:    uuid.New().String(),
		Report:   report,
		Guidance: result,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if analyzeOutFile == "" {
		fmt.Println(string(output))
		return nil
	}
	if err := os.WriteFile(analyzeOutFile, append(output, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func loadJobDescription(ctx context.Context) (string, error) {
	if analyzeJDURL != "" {
		text, err := ingestion.FetchJobPosting(ctx, analyzeJDURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, nil
	}

	content, err := os.ReadFile(analyzeJDFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return ingestion.CleanText(string(content)), nil
}

func loadResume(path string) (string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		text, err := ingestion.ExtractPDFFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to extract resume text: %w", err)
		}
		return text, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	return ingestion.CleanText(string(content)), nil
}

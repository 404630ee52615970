package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/resume-analyzer/resume-analyzer/internal/config"
	"github.com/resume-analyzer/resume-analyzer/internal/models"
	"github.com/resume-analyzer/resume-analyzer/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var jobDescription, jobDescriptionFile string

	cmd := &cobra.Command{
		Use:   "analyze-resume <resume-file>",
		Short: "Analyze a resume file and print the JSON result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobDescriptionFile != "" {
				data, err := os.ReadFile(jobDescriptionFile)
				if err != nil {
					return fmt.Errorf("failed to read job description: %w", err)
				}
				jobDescription = string(data)
			}
			return runAnalyze(cmd.Context(), args[0], jobDescription)
		},
	}

	cmd.Flags().StringVarP(&jobDescription, "job-description", "j", "", "job description text")
	cmd.Flags().StringVar(&jobDescriptionFile, "job-description-file", "", "read the job description from a file")
	cmd.MarkFlagsMutuallyExclusive("job-description", "job-description-file")

	return cmd
}

func runAnalyze(ctx context.Context, path, jobDescription string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	llmService, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		return err
	}

	analyzer := services.NewAnalyzerService(
		services.NewTextExtractorService(),
		llmService,
		cfg.Analysis.StrictSchema,
		cfg.LLM.Timeout,
	)

	log.Printf("🚀 Analyzing %s with %s\n", path, llmService.Name())

	var out any
	analysis, err := analyzer.AnalyzeDocument(ctx, uuid.New(), data, jobDescription)
	switch {
	case errors.Is(err, services.ErrDocumentUnreadable):
		out = models.ErrorResponse{Error: models.UnreadableDocumentMessage}
	case err != nil:
		return err
	default:
		out = analysis.Result
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

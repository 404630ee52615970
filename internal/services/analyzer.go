package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	// Analyze always returns a result. Failures yield models.FallbackResult.
	Analyze(ctx context.Context, requestID uuid.UUID, resumeText, jobDescription string) *Analysis
	// AnalyzeDocument extracts text first and returns ErrDocumentUnreadable
	// without calling the model when that fails.
	AnalyzeDocument(ctx context.Context, requestID uuid.UUID, data []byte, jobDescription string) (*Analysis, error)
}

// Analysis is one orchestrator result plus the internal outcome tag.
type Analysis struct {
	RequestID uuid.UUID
	Result    *models.AnalysisResult
	Outcome   models.OutcomeKind
	Err       error
	Strategy  string
}

type analyzerService struct {
	extractor     TextExtractorService
	llmService    LLMService
	promptBuilder *PromptBuilder
	strictSchema  bool
	timeout       time.Duration
}

func NewAnalyzerService(
	extractor TextExtractorService,
	llmService LLMService,
	strictSchema bool,
	timeout time.Duration,
) AnalyzerService {
	return &analyzerService{
		extractor:     extractor,
		llmService:    llmService,
		promptBuilder: NewPromptBuilder(),
		strictSchema:  strictSchema,
		timeout:       timeout,
	}
}

func (a *analyzerService) AnalyzeDocument(ctx context.Context, requestID uuid.UUID, data []byte, jobDescription string) (*Analysis, error) {
	log.Printf("📄 [%s] Extracting text from %d bytes\n", requestID, len(data))

	content, err := a.extractor.ExtractText(data)
	if err != nil {
		log.Printf("❌ [%s] Document unreadable: %v\n", requestID, err)
		return nil, err
	}

	analysis := a.Analyze(ctx, requestID, content.Text, jobDescription)
	analysis.Strategy = content.Strategy
	return analysis, nil
}

func (a *analyzerService) Analyze(ctx context.Context, requestID uuid.UUID, resumeText, jobDescription string) (analysis *Analysis) {
	defer func() {
		if r := recover(); r != nil {
			analysis = a.fallback(requestID, models.OutcomeServiceError, fmt.Errorf("panic during analysis: %v", r))
		}
	}()

	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(resumeText, jobDescription)
	log.Printf("📝 [%s] Analysis prompt length: %d characters\n", requestID, len(prompt))

	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	log.Printf("🤖 [%s] Requesting analysis from %s\n", requestID, a.llmService.Name())
	reply, err := a.llmService.GenerateText(callCtx, prompt)
	if err != nil {
		return a.fallback(requestID, models.OutcomeServiceError, fmt.Errorf("failed to generate analysis: %w", err))
	}
	log.Printf("✅ [%s] Analysis response received: %d characters\n", requestID, len(reply))

	result, err := NormalizeResponse(reply, a.strictSchema)
	if err != nil {
		return a.fallback(requestID, models.OutcomeMalformedReply, fmt.Errorf("failed to parse analysis response: %w", err))
	}

	recordOutcome(models.OutcomeModel)
	return &Analysis{
		RequestID: requestID,
		Result:    result,
		Outcome:   models.OutcomeModel,
	}
}

func (a *analyzerService) fallback(requestID uuid.UUID, kind models.OutcomeKind, err error) *Analysis {
	log.Printf("⚠️  [%s] Returning fallback result (%s): %v\n", requestID, kind, err)
	recordOutcome(kind)
	return &Analysis{
		RequestID: requestID,
		Result:    models.FallbackResult(),
		Outcome:   kind,
		Err:       err,
	}
}

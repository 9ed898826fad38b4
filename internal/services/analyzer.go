package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"alfredoptarigan/resumatch/internal/models"
)

var ErrMissingInput = errors.New("resume and job description are required")

type Analysis struct {
	ID     uuid.UUID
	Result models.AnalysisResult
}

type AnalyzerService interface {
	AnalyzeDocument(ctx context.Context, data []byte, kind DocumentKind, jobDescription string) (*Analysis, error)
	AnalyzeText(ctx context.Context, req models.AnalysisRequest) (*Analysis, error)
}

type AnalyzerOptions struct {
	MaxConcurrent int
	Timeout       time.Duration
}

type analyzerService struct {
	extractor     TextExtractorService
	geminiService GeminiService
	promptBuilder *PromptBuilder
	sem           *semaphore.Weighted
	timeout       time.Duration
}

func NewAnalyzerService(
	extractor TextExtractorService,
	geminiService GeminiService,
	opts AnalyzerOptions,
) AnalyzerService {
	var sem *semaphore.Weighted
	if opts.MaxConcurrent > 0 {
		sem = semaphore.NewWeighted(int64(opts.MaxConcurrent))
	}

	return &analyzerService{
		extractor:     extractor,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		sem:           sem,
		timeout:       opts.Timeout,
	}
}

// AnalyzeDocument extracts the résumé text and runs the analysis on it.
func (a *analyzerService) AnalyzeDocument(ctx context.Context, data []byte, kind DocumentKind, jobDescription string) (*Analysis, error) {
	if len(data) == 0 || strings.TrimSpace(jobDescription) == "" {
		return nil, ErrMissingInput
	}

	log.Printf("📄 Extracting %s resume text (%d bytes)...", kind, len(data))
	resumeText, err := a.extractor.ExtractText(data, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	return a.AnalyzeText(ctx, models.AnalysisRequest{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	})
}

// AnalyzeText makes one model call and parses its reply.
func (a *analyzerService) AnalyzeText(ctx context.Context, req models.AnalysisRequest) (*Analysis, error) {
	// an image-only PDF legitimately yields no text, so only the JD is required here
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, ErrMissingInput
	}

	id := uuid.New()

	// the timeout also bounds the wait for a free slot
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if a.sem != nil {
		if err := a.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("failed to start analysis: %w", err)
		}
		defer a.sem.Release(1)
	}

	prompt := a.promptBuilder.BuildMatchPrompt(req.ResumeText, req.JobDescription)
	log.Printf("🤖 [%s] Requesting analysis from %s (prompt %d characters)", id, a.geminiService.ModelName(), len(prompt))

	response, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ [%s] Analysis failed: %v", id, err)
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	log.Printf("✅ [%s] Analysis response received: %d characters", id, len(response))

	return &Analysis{
		ID:     id,
		Result: ParseAnalysis(response),
	}, nil
}

package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cv-analyzer/internal/models"
)

type AnalyzerService interface {
	AnalyzeDocument(ctx context.Context, doc models.SourceDocument, jobDescription string) (*models.AnalysisResult, error)
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type analyzerService struct {
	geminiService GeminiService
	extractor     ExtractorService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(
	geminiService GeminiService,
	extractor ExtractorService,
) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
	}
}

// AnalyzeDocument runs the full pipeline from an uploaded document. Extraction
// is the hard gate: an unreadable document fails the run before any model call
// is made.
func (a *analyzerService) AnalyzeDocument(ctx context.Context, doc models.SourceDocument, jobDescription string) (*models.AnalysisResult, error) {
	log.Println("📄 Extracting document text...")

	cvText, err := a.extractor.ExtractText(doc.Data, doc.MediaType)
	if err != nil {
		return &models.AnalysisResult{State: models.StateFailed}, fmt.Errorf("failed to extract CV text: %w", err)
	}

	return a.Analyze(ctx, models.AnalysisRequest{
		CVText:         cvText,
		JobDescription: jobDescription,
	})
}

// Analyze produces one AnalysisResult from one request. The three model calls
// run in the declared order and degrade independently: a failed call leaves
// its sentinel error text in the artifact slot while the siblings proceed.
// Every invocation is an independent compute; nothing is cached across runs.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if !req.IsComplete() {
		return nil, ErrEmptyInput
	}

	cvText := strings.TrimSpace(req.CVText)
	jdText := strings.TrimSpace(req.JobDescription)

	result := &models.AnalysisResult{State: models.StateScoringInFlight}

	log.Println("📊 Calculating fit score...")
	result.FitScore = a.geminiService.Invoke(ctx, a.promptBuilder.BuildFitScorePrompt(cvText, jdText))

	result.State = models.StateSnapshotInFlight
	log.Println("👤 Extracting candidate profile...")
	result.SnapshotRaw = a.geminiService.Invoke(ctx, a.promptBuilder.BuildSnapshotPrompt(cvText))

	result.State = models.StateParsingSnapshot
	snapshot, err := ParseSnapshot(result.SnapshotRaw)
	if err != nil {
		// Keep the raw response for manual review instead of discarding it
		log.Printf("⚠️  Snapshot response is not valid JSON: %v\n", err)
		result.SnapshotErr = err.Error()
	} else {
		result.Snapshot = snapshot
	}

	result.State = models.StateInterviewInFlight
	log.Println("📝 Generating interview questions...")
	result.InterviewKit = a.geminiService.Invoke(ctx, a.promptBuilder.BuildInterviewKitPrompt(cvText, jdText))

	result.State = models.StateComplete
	log.Println("✅ Analysis complete")

	return result, nil
}

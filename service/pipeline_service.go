package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tieubaoca/docsense-be/repository"
	"github.com/tieubaoca/docsense-be/types"
	"github.com/tieubaoca/docsense-be/utils"
)

// DocumentIndexer receives persisted records for keyword search. Index
// failures are logged, never surfaced: search is a secondary view over
// the primary store.
type DocumentIndexer interface {
	IndexDocument(ctx context.Context, record *types.DocumentRecord) error
}

// PipelineService sequences one document through
// detect → extract → analyze → persist. Each invocation is independent
// and at-most-once; failures surface synchronously as a PipelineError
// carrying the failing stage and kind, and the caller owns any retry.
type PipelineService struct {
	extractService *ExtractService
	analysis       AnalysisProvider
	repo           repository.DocumentRepo
	health         *HealthService
	indexer        DocumentIndexer
	uploadDir      string
	archiveUploads bool
}

func NewPipelineService(
	extractService *ExtractService,
	analysis AnalysisProvider,
	repo repository.DocumentRepo,
	health *HealthService,
) *PipelineService {
	return &PipelineService{
		extractService: extractService,
		analysis:       analysis,
		repo:           repo,
		health:         health,
	}
}

// WithIndexer attaches a search indexer for persisted records.
func (s *PipelineService) WithIndexer(indexer DocumentIndexer) *PipelineService {
	s.indexer = indexer
	return s
}

// WithUploadArchive enables archiving of raw upload bytes to uploadDir.
func (s *PipelineService) WithUploadArchive(uploadDir string) *PipelineService {
	s.uploadDir = uploadDir
	s.archiveUploads = uploadDir != ""
	return s
}

// Process runs the full pipeline over one blob and returns the persisted
// record's identifier together with the analysis payload.
func (s *PipelineService) Process(ctx context.Context, blob types.DocumentBlob) (*types.AnalyzeResponse, error) {
	// Idle: refuse admission when a required backend is down rather
	// than doing partial work that cannot be persisted.
	health := s.health.Check(ctx)
	if !health.OK() {
		return nil, types.NewPipelineError(types.StageIdle, types.ErrServiceUnavailable,
			unavailableMessage(health), nil)
	}

	// Detecting
	kind := DetectFormat(blob.MimeType)
	if kind == types.FormatUnsupported {
		return nil, types.NewPipelineError(types.StageDetecting, types.ErrUnsupportedFormat,
			fmt.Sprintf("unsupported file type: %q", blob.MimeType), nil)
	}

	// Extracting
	extracted, err := s.extractService.Extract(ctx, kind, blob)
	if err != nil {
		if pipelineErr, ok := err.(*types.PipelineError); ok {
			return nil, pipelineErr.WithStage(types.StageExtracting)
		}
		return nil, types.NewPipelineError(types.StageExtracting, types.ErrNoTextFound, err.Error(), err)
	}

	if s.archiveUploads {
		if _, err := utils.WriteBlobWithTimestamp(blob.Data, blob.FileName, s.uploadDir); err != nil {
			log.Printf("Failed to archive upload %s: %v", blob.FileName, err)
		}
	}

	// Analyzing: degrades gracefully. A failed or timed-out analysis
	// leaves the record's analysis payload absent; it never aborts the
	// run once extraction succeeded.
	analysis, err := s.analysis.Analyze(ctx, extracted.Content)
	if err != nil {
		log.Printf("Analysis failed for %s, persisting without analysis: %v", blob.FileName, err)
		analysis = nil
	}

	// Persisting: fatal on failure, nothing partial is ever kept.
	record := &types.DocumentRecord{
		Title:      documentTitle(blob.FileName),
		Content:    extracted.Content,
		FileType:   extracted.Format,
		Analysis:   analysis,
		UploadDate: time.Now().Unix(),
	}
	id, err := s.repo.Save(ctx, record)
	if err != nil {
		return nil, types.NewPipelineError(types.StagePersisting, types.ErrStorageUnavailable,
			"storage service is unavailable", err)
	}

	if s.indexer != nil {
		if err := s.indexer.IndexDocument(ctx, record); err != nil {
			log.Printf("Failed to index document %s: %v", id, err)
		}
	}

	// Done
	return &types.AnalyzeResponse{
		ID:       id,
		Title:    record.Title,
		Content:  record.Content,
		FileType: record.FileType,
		Analysis: record.Analysis,
	}, nil
}

func documentTitle(fileName string) string {
	title := utils.FileNameWithoutExt(fileName)
	if title == "" || title == "." {
		return "untitled"
	}
	return title
}

func unavailableMessage(health types.BackendHealth) string {
	switch {
	case !health.StorageAvailable && !health.AnalysisAvailable:
		return "storage and analysis services are unavailable"
	case !health.StorageAvailable:
		return "storage service is unavailable"
	default:
		return "analysis service is unavailable"
	}
}

package service

import (
	"context"
	"time"

	"github.com/tieubaoca/docsense-be/repository"
	"github.com/tieubaoca/docsense-be/types"
)

// HealthService probes the storage and analysis backends before a
// pipeline run is admitted. Probes are request-scoped; nothing is cached
// across requests, so a recovered backend is seen immediately.
type HealthService struct {
	repo     repository.DocumentRepo
	analysis AnalysisProvider
}

func NewHealthService(repo repository.DocumentRepo, analysis AnalysisProvider) *HealthService {
	return &HealthService{
		repo:     repo,
		analysis: analysis,
	}
}

func (s *HealthService) Check(ctx context.Context) types.BackendHealth {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return types.BackendHealth{
		StorageAvailable:  s.repo.Ping(probeCtx) == nil,
		AnalysisAvailable: s.analysis.Live(probeCtx),
	}
}

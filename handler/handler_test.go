package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	services "github.com/tieubaoca/docsense-be/service"
	"github.com/tieubaoca/docsense-be/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryRepo is an in-memory DocumentRepo for handler tests.
type memoryRepo struct {
	records map[string]*types.DocumentRecord
	order   []string
	saveErr error
	nextID  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[string]*types.DocumentRecord)}
}

func (r *memoryRepo) Save(ctx context.Context, record *types.DocumentRecord) (string, error) {
	if r.saveErr != nil {
		return "", r.saveErr
	}
	r.nextID++
	record.ID = fmt.Sprintf("doc-%d", r.nextID)
	stored := *record
	r.records[record.ID] = &stored
	r.order = append(r.order, record.ID)
	return record.ID, nil
}

func (r *memoryRepo) Get(ctx context.Context, id string) (*types.DocumentRecord, error) {
	return r.records[id], nil
}

func (r *memoryRepo) List(ctx context.Context, page, limit int64, fileType types.FormatKind) ([]*types.DocumentRecord, int64, error) {
	var all []*types.DocumentRecord
	for _, id := range r.order {
		record := r.records[id]
		if record == nil {
			continue
		}
		if fileType != "" && record.FileType != fileType {
			continue
		}
		all = append(all, record)
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= total {
		return []*types.DocumentRecord{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *memoryRepo) Ping(ctx context.Context) error { return nil }

// unavailableRepo fails the liveness probe.
type unavailableRepo struct{ memoryRepo }

func (r *unavailableRepo) Ping(ctx context.Context) error {
	return errors.New("no reachable servers")
}

func newTestPipeline(repo *memoryRepo) *services.PipelineService {
	extract := services.NewExtractService("eng")
	analysis := services.NewLocalAnalysisService(5 * time.Second)
	health := services.NewHealthService(repo, analysis)
	return services.NewPipelineService(extract, analysis, repo, health)
}

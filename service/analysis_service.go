package service

import (
	"context"
	"log"
	"time"

	"github.com/tieubaoca/docsense-be/types"
	"golang.org/x/sync/errgroup"
)

// AnalysisProvider runs the three analysis engines over one extracted
// text. The pipeline only sees this interface; whether the engines run
// in-process or behind a remote service is decided at composition time.
type AnalysisProvider interface {
	Analyze(ctx context.Context, text string) (*types.AnalysisResult, error)
	Live(ctx context.Context) bool
}

// LocalAnalysisService fans the three engines out over the same
// immutable text, each writing its own result slot, and joins them. An
// engine that misses its deadline leaves its slot absent; it never fails
// the whole analysis.
type LocalAnalysisService struct {
	sentiment     *SentimentService
	entities      *EntityService
	topics        *TopicService
	engineTimeout time.Duration
}

func NewLocalAnalysisService(engineTimeout time.Duration) *LocalAnalysisService {
	if engineTimeout <= 0 {
		engineTimeout = 10 * time.Second
	}
	return &LocalAnalysisService{
		sentiment:     NewSentimentService(),
		entities:      NewEntityService(),
		topics:        NewTopicService(),
		engineTimeout: engineTimeout,
	}
}

func (s *LocalAnalysisService) Analyze(ctx context.Context, text string) (*types.AnalysisResult, error) {
	result := &types.AnalysisResult{}

	var g errgroup.Group
	g.Go(func() error {
		sentiment, ok := runEngine(ctx, s.engineTimeout, func() *types.Sentiment {
			return s.sentiment.Score(text)
		})
		if !ok {
			log.Printf("sentiment engine exceeded %s, dropping result", s.engineTimeout)
			return nil
		}
		result.Sentiment = sentiment
		return nil
	})
	g.Go(func() error {
		entities, ok := runEngine(ctx, s.engineTimeout, func() map[string][]string {
			return s.entities.Extract(text)
		})
		if !ok {
			log.Printf("entity engine exceeded %s, dropping result", s.engineTimeout)
			return nil
		}
		result.Entities = entities
		return nil
	})
	g.Go(func() error {
		topics, ok := runEngine(ctx, s.engineTimeout, func() []string {
			return s.topics.Extract(text)
		})
		if !ok {
			log.Printf("topic engine exceeded %s, dropping result", s.engineTimeout)
			return nil
		}
		result.Topics = topics
		return nil
	})
	g.Wait()

	return result, nil
}

// Live always reports true: the in-process engines cannot be down.
func (s *LocalAnalysisService) Live(ctx context.Context) bool {
	return true
}

// runEngine runs fn with a deadline. The buffered channel lets a late
// engine finish and be collected even after its result is discarded.
func runEngine[T any](ctx context.Context, timeout time.Duration, fn func() T) (T, bool) {
	done := make(chan T, 1)
	go func() {
		done <- fn()
	}()
	select {
	case value := <-done:
		return value, true
	case <-time.After(timeout):
	case <-ctx.Done():
	}
	var zero T
	return zero, false
}

package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestPipelineErrorKindMatching(t *testing.T) {
	err := NewPipelineError(StageExtracting, ErrCorruptDocument, "bad container", nil)
	if !errors.Is(err, &PipelineError{Kind: ErrCorruptDocument}) {
		t.Error("errors.Is should match on kind")
	}
	if errors.Is(err, &PipelineError{Kind: ErrNoTextFound}) {
		t.Error("errors.Is matched a different kind")
	}
}

func TestPipelineErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := NewPipelineError(StagePersisting, ErrStorageUnavailable, "save failed", cause)
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}

func TestPipelineErrorWithStage(t *testing.T) {
	err := NewPipelineError(StageDetecting, ErrUnsupportedFormat, "nope", nil)
	retagged := err.WithStage(StageExtracting)
	if retagged.Stage != StageExtracting {
		t.Errorf("stage = %q, want %q", retagged.Stage, StageExtracting)
	}
	if retagged.Kind != err.Kind || retagged.Message != err.Message {
		t.Error("WithStage must keep kind and message")
	}
	if err.Stage != StageDetecting {
		t.Error("WithStage must not mutate the original")
	}
}

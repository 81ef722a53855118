package types

import "fmt"

// Stage identifies where in the pipeline a failure happened.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageDetecting  Stage = "detecting"
	StageExtracting Stage = "extracting"
	StageAnalyzing  Stage = "analyzing"
	StagePersisting Stage = "persisting"
	StageDone       Stage = "done"
)

// ErrorKind is the fixed failure taxonomy surfaced to callers.
type ErrorKind string

const (
	ErrUnsupportedFormat  ErrorKind = "UnsupportedFormat"
	ErrNoTextFound        ErrorKind = "NoTextFound"
	ErrCorruptDocument    ErrorKind = "CorruptDocument"
	ErrEncodingError      ErrorKind = "EncodingError"
	ErrStorageUnavailable ErrorKind = "StorageUnavailable"
	ErrServiceUnavailable ErrorKind = "ServiceUnavailable"
	ErrTimeout            ErrorKind = "Timeout"
)

// PipelineError is a failure with its stage and kind attached so callers
// can tell an unreadable file from a temporarily unavailable backend.
type PipelineError struct {
	Stage   Stage
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Is matches on kind only, so tests and callers can assert the taxonomy
// value without caring about message text.
func (e *PipelineError) Is(target error) bool {
	if t, ok := target.(*PipelineError); ok {
		return e.Kind == t.Kind
	}
	return false
}

// NewPipelineError creates a stage-tagged error of the given kind.
func NewPipelineError(stage Stage, kind ErrorKind, message string, cause error) *PipelineError {
	return &PipelineError{
		Stage:   stage,
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// WithStage re-tags an extraction error with the stage the orchestrator
// observed it in, keeping the kind and cause intact.
func (e *PipelineError) WithStage(stage Stage) *PipelineError {
	return &PipelineError{
		Stage:   stage,
		Kind:    e.Kind,
		Message: e.Message,
		Cause:   e.Cause,
	}
}

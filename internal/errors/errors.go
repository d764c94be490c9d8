package errors

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline stage an error originated from.
type Stage string

const (
	StageConfig    Stage = "config"
	StageLoad      Stage = "load"
	StageClean     Stage = "clean"
	StageDerive    Stage = "derive"
	StageAggregate Stage = "aggregate"
	StageExport    Stage = "export"
)

// Error codes for common failure scenarios.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeLoadFailed    = "LOAD_FAILED"
	CodeSchemaInvalid = "SCHEMA_INVALID"
	CodeRowMalformed  = "ROW_MALFORMED"
	CodeAggregation   = "AGGREGATION_FAILED"
	CodeExportFailed  = "EXPORT_FAILED"
)

// PipelineError is a structured error carrying the originating stage and a
// stable error code. All fatal pipeline failures are reported as
// PipelineErrors; per-field parse failures are not errors at all, they
// become null fields on the row.
type PipelineError struct {
	Stage   Stage
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// New creates a PipelineError without an underlying cause.
func New(stage Stage, code, message string) *PipelineError {
	return &PipelineError{Stage: stage, Code: code, Message: message}
}

// Wrap creates a PipelineError wrapping an underlying cause.
func Wrap(stage Stage, code, message string, err error) *PipelineError {
	return &PipelineError{Stage: stage, Code: code, Message: message, Err: err}
}

// LoadFailed reports a fatal source-file failure. Load failures abort the
// entire run; there is no partial-load recovery.
func LoadFailed(message string, err error) *PipelineError {
	return Wrap(StageLoad, CodeLoadFailed, message, err)
}

// RowMalformed reports a structurally invalid input row. Malformed rows fail
// the whole load rather than being skipped.
func RowMalformed(line int, err error) *PipelineError {
	return Wrap(StageLoad, CodeRowMalformed, fmt.Sprintf("malformed row at line %d", line), err)
}

// SchemaInvalid reports an input header that does not match the fixed schema.
func SchemaInvalid(message string) *PipelineError {
	return New(StageLoad, CodeSchemaInvalid, message)
}

// ExportFailed reports a failure writing an output table.
func ExportFailed(table string, err error) *PipelineError {
	return Wrap(StageExport, CodeExportFailed, fmt.Sprintf("failed to write %s", table), err)
}

// CodeOf returns the error code of err if it is (or wraps) a PipelineError,
// and the empty string otherwise.
func CodeOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// StageOf returns the stage of err if it is (or wraps) a PipelineError.
func StageOf(err error) Stage {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Stage
	}
	return ""
}
